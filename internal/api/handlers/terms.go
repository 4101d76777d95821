package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/api/models"
	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
)

// TermHandler handles term parsing and month breakdowns
type TermHandler struct {
	counter        *analysis.Counter
	defTz          *time.Location
	defaultBuckets []bucket.Bucket
}

// NewTermHandler creates a new term handler. defaultBuckets are used by the
// month breakdown when the request names none.
func NewTermHandler(counter *analysis.Counter, defTz *time.Location, defaultBuckets []bucket.Bucket) *TermHandler {
	if counter == nil {
		counter = &analysis.Counter{}
	}
	if len(defaultBuckets) == 0 {
		defaultBuckets = []bucket.Bucket{bucket.B5x16, bucket.B2x16H, bucket.B7x8}
	}
	return &TermHandler{counter: counter, defTz: defTz, defaultBuckets: defaultBuckets}
}

// ParseTerm handles GET /api/v1/terms?term=Q1,22[America/New_York]
func (h *TermHandler) ParseTerm(c *gin.Context) {
	term, ok := h.bindTerm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, termInfo(c.Query("term"), term))
}

// Months handles GET /api/v1/terms/months?term=Cal22&bucket=5x16,offpeak
func (h *TermHandler) Months(c *gin.Context) {
	term, ok := h.bindTerm(c)
	if !ok {
		return
	}
	buckets := h.defaultBuckets
	if s := c.Query("bucket"); strings.TrimSpace(s) != "" {
		bs, err := bucket.ParseList(s)
		if err != nil {
			respondParseError(c, err)
			return
		}
		buckets = bs
	}

	breakdown := h.counter.BreakdownByMonth(buckets, term)
	months := make([]models.MonthResult, len(breakdown))
	for i, m := range breakdown {
		months[i] = models.MonthResult{
			Month:  m.Month.String(),
			Term:   m.Term.Term.String(),
			Counts: countResults(m.Counts),
		}
	}
	c.JSON(http.StatusOK, models.MonthsResponse{
		Term:   termInfo(c.Query("term"), term),
		Months: months,
	})
}

func (h *TermHandler) bindTerm(c *gin.Context) (calendar.TermTz, bool) {
	var req models.TermRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidParam, err.Error(), nil)
		return calendar.TermTz{}, false
	}
	if strings.TrimSpace(req.Term) == "" {
		respondError(c, http.StatusBadRequest, models.CodeMissingParam, "term query parameter is required", nil)
		return calendar.TermTz{}, false
	}
	loc, err := resolveZone(req.Tz, h.defTz)
	if err != nil {
		respondParseError(c, err)
		return calendar.TermTz{}, false
	}
	term, err := calendar.ParseTermTz(req.Term, loc)
	if err != nil {
		respondParseError(c, err)
		return calendar.TermTz{}, false
	}
	return term, true
}

func termInfo(input string, t calendar.TermTz) models.TermInfo {
	return models.TermInfo{
		Input:     input,
		Canonical: t.Term.Canonical(),
		Zone:      t.Loc.String(),
		StartDate: t.Term.Start.String(),
		EndDate:   t.Term.Last().String(),
		Start:     t.Start(),
		End:       t.End(),
		Days:      t.Term.DayCount(),
		Hours:     t.HourCount(),
	}
}
