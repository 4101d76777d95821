package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
)

var countHeader = []string{
	"bucket",
	"term",
	"zone",
	"start_local",
	"end_local",
	"start_utc",
	"end_utc",
	"hours",
}

var hourHeader = []string{
	"index",
	"hour_start_local",
	"hour_end_local",
	"hour_start_utc",
	"date",
	"hour_ending",
	"bucket",
}

// WriteCounts writes one row per count, in order.
func WriteCounts(out io.Writer, counts []analysis.Count) error {
	w := csv.NewWriter(out)
	if err := w.Write(countHeader); err != nil {
		return err
	}
	for _, c := range counts {
		row := []string{
			c.Bucket.String(),
			c.Term.Term.String(),
			c.Term.Loc.String(),
			fmtTime(c.Term.Start()),
			fmtTime(c.Term.End()),
			fmtTime(c.Term.Start().UTC()),
			fmtTime(c.Term.End().UTC()),
			strconv.Itoa(c.Hours),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteHours writes the given hours of bucket b, one row each.
func WriteHours(out io.Writer, b bucket.Bucket, hours []calendar.Hour) error {
	w := csv.NewWriter(out)
	if err := w.Write(hourHeader); err != nil {
		return err
	}
	for i, h := range hours {
		row := []string{
			strconv.Itoa(i),
			fmtTime(h.Start()),
			fmtTime(h.End()),
			fmtTime(h.Start().UTC()),
			h.Date().String(),
			strconv.Itoa(h.HourOfDay() + 1),
			b.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteCountsFile writes counts to a new file at path.
func WriteCountsFile(path string, counts []analysis.Count) error {
	return writeFile(path, func(w io.Writer) error { return WriteCounts(w, counts) })
}

// WriteHoursFile writes the hours of b to a new file at path.
func WriteHoursFile(path string, b bucket.Bucket, hours []calendar.Hour) error {
	return writeFile(path, func(w io.Writer) error { return WriteHours(w, b, hours) })
}

// writeFile creates path and hands it to write. A failed close is reported
// when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
