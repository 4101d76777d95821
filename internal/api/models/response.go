package models

import "time"

// HoursResponse is returned by GET /api/v1/hours
type HoursResponse struct {
	Counts []CountResult `json:"counts"`
	RunID  string        `json:"run_id,omitempty"`
}

// CountResult is the hour count of one bucket over one zoned term
type CountResult struct {
	Bucket string    `json:"bucket"`
	Term   string    `json:"term"`
	Zone   string    `json:"zone"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Hours  int       `json:"hours"`
}

// BucketInfo describes a bucket for listings
type BucketInfo struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases"`
	Region       string   `json:"region"`
	Description  string   `json:"description"`
	UsesHolidays bool     `json:"uses_holidays"`
}

// TermInfo is a parsed term
type TermInfo struct {
	Input     string    `json:"input"`
	Canonical string    `json:"canonical"`
	Zone      string    `json:"zone"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"` // inclusive
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Days      int       `json:"days"`
	Hours     int       `json:"hours"`
}

// MonthsResponse is the month by month breakdown of a term
type MonthsResponse struct {
	Term   TermInfo      `json:"term"`
	Months []MonthResult `json:"months"`
}

type MonthResult struct {
	Month  string        `json:"month"`
	Term   string        `json:"term"`
	Counts []CountResult `json:"counts"`
}

type HolidayInfo struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Actual  string `json:"actual"`
	Shifted bool   `json:"shifted"`
}

type HolidaysResponse struct {
	Year     int           `json:"year"`
	Holidays []HolidayInfo `json:"holidays"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes
const (
	CodeInvalidBucket = "INVALID_BUCKET"
	CodeInvalidTerm   = "INVALID_TERM"
	CodeInvalidParam  = "INVALID_PARAM"
	CodeMissingParam  = "MISSING_PARAM"
	CodeStoreError    = "STORE_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)
