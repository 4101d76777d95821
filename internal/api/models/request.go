package models

// HoursRequest is the query of GET /api/v1/hours. Bucket and Term are
// comma-separated lists; Term may also repeat.
type HoursRequest struct {
	Bucket string   `form:"bucket"`
	Term   []string `form:"term"`
	Tz     string   `form:"tz"`      // zone for terms without one; default from config
	Format string   `form:"format"`  // "json" (default) or "csv"
	DryRun bool     `form:"dry_run"` // skip the run store
}

// TermRequest is the query of the /api/v1/terms endpoints.
type TermRequest struct {
	Term   string `form:"term"`
	Bucket string `form:"bucket"`
	Tz     string `form:"tz"`
}

type HolidaysRequest struct {
	Year int `form:"year"`
}

type RunsRequest struct {
	Limit int `form:"limit"`
}
