package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/api/models"
	"github.com/thumbert/bust-sub001/internal/report"
	"github.com/thumbert/bust-sub001/internal/store/sqlite"
)

// HoursHandler handles hour count requests and the stored runs they produce
type HoursHandler struct {
	counter *analysis.Counter
	defTz   *time.Location
	db      *sql.DB // nil disables the run store
}

// NewHoursHandler creates a new hours handler
func NewHoursHandler(counter *analysis.Counter, defTz *time.Location, db *sql.DB) *HoursHandler {
	if counter == nil {
		counter = &analysis.Counter{}
	}
	return &HoursHandler{counter: counter, defTz: defTz, db: db}
}

// CountHours handles GET /api/v1/hours
func (h *HoursHandler) CountHours(c *gin.Context) {
	var req models.HoursRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidParam, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Bucket) == "" {
		respondError(c, http.StatusBadRequest, models.CodeMissingParam, "bucket query parameter is required", nil)
		return
	}

	loc, err := resolveZone(req.Tz, h.defTz)
	if err != nil {
		respondParseError(c, err)
		return
	}
	pairs, err := analysis.ParsePairs(req.Bucket, strings.Join(req.Term, ","), loc)
	if err != nil {
		respondParseError(c, err)
		return
	}

	start := time.Now()
	counts := h.counter.CountHours(pairs)
	log.Printf("[Hours] counted %d pairs in %s", len(pairs), time.Since(start))

	resp := models.HoursResponse{Counts: countResults(counts)}
	if h.db != nil && !req.DryRun {
		run := sqlite.NewRun("api", counts, time.Now())
		if err := sqlite.SaveRun(h.db, run); err != nil {
			log.Printf("[Hours] failed to store run: %v", err)
			respondError(c, http.StatusInternalServerError, models.CodeStoreError, "Failed to store run", nil)
			return
		}
		resp.RunID = run.ID
	}

	if strings.EqualFold(req.Format, "csv") {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		if resp.RunID != "" {
			c.Header("X-Run-ID", resp.RunID)
		}
		c.Status(http.StatusOK)
		if err := report.WriteCounts(c.Writer, counts); err != nil {
			log.Printf("[Hours] failed to write csv: %v", err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRun handles GET /api/v1/runs/:id
func (h *HoursHandler) GetRun(c *gin.Context) {
	if h.db == nil {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "run store is disabled", nil)
		return
	}
	id := c.Param("id")
	run, err := sqlite.LoadRun(h.db, id)
	if errors.Is(err, sqlite.ErrRunNotFound) {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "run not found", map[string]interface{}{"id": id})
		return
	}
	if err != nil {
		log.Printf("[Hours] failed to load run %s: %v", id, err)
		respondError(c, http.StatusInternalServerError, models.CodeStoreError, "Failed to load run", nil)
		return
	}
	c.JSON(http.StatusOK, run)
}

// ListRuns handles GET /api/v1/runs
func (h *HoursHandler) ListRuns(c *gin.Context) {
	if h.db == nil {
		respondError(c, http.StatusNotFound, models.CodeNotFound, "run store is disabled", nil)
		return
	}
	var req models.RunsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidParam, "limit must be an integer", nil)
		return
	}
	runs, err := sqlite.ListRuns(h.db, req.Limit)
	if err != nil {
		log.Printf("[Hours] failed to list runs: %v", err)
		respondError(c, http.StatusInternalServerError, models.CodeStoreError, "Failed to list runs", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}
