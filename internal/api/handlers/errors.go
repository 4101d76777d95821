package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/api/models"
	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
)

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondParseError maps bucket and term parse failures to 400 responses.
func respondParseError(c *gin.Context, err error) {
	var (
		bErr *bucket.ParseError
		tErr *calendar.TermError
	)
	switch {
	case errors.As(err, &bErr):
		respondError(c, http.StatusBadRequest, models.CodeInvalidBucket, err.Error(), map[string]interface{}{
			"token":   bErr.Token,
			"buckets": bucketNames(),
		})
	case errors.As(err, &tErr):
		respondError(c, http.StatusBadRequest, models.CodeInvalidTerm, err.Error(), map[string]interface{}{
			"input": tErr.Input,
		})
	case errors.Is(err, calendar.ErrUnknownZone):
		respondError(c, http.StatusBadRequest, models.CodeInvalidTerm, err.Error(), nil)
	case errors.Is(err, analysis.ErrNoBuckets):
		respondError(c, http.StatusBadRequest, models.CodeMissingParam, "bucket query parameter is required", nil)
	case errors.Is(err, analysis.ErrNoTerms):
		respondError(c, http.StatusBadRequest, models.CodeMissingParam, "term query parameter is required", nil)
	default:
		respondError(c, http.StatusInternalServerError, models.CodeInternalError, err.Error(), nil)
	}
}

// resolveZone returns the zone named by tz, or def when tz is empty.
func resolveZone(tz string, def *time.Location) (*time.Location, error) {
	if tz == "" {
		return def, nil
	}
	return calendar.LoadLocation(tz)
}

func bucketNames() []string {
	all := bucket.All()
	out := make([]string, len(all))
	for i, b := range all {
		out[i] = b.String()
	}
	return out
}

func countResults(counts []analysis.Count) []models.CountResult {
	out := make([]models.CountResult, len(counts))
	for i, cnt := range counts {
		out[i] = models.CountResult{
			Bucket: cnt.Bucket.String(),
			Term:   cnt.Term.Term.String(),
			Zone:   cnt.Term.Loc.String(),
			Start:  cnt.Term.Start(),
			End:    cnt.Term.End(),
			Hours:  cnt.Hours,
		}
	}
	return out
}
