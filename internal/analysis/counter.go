package analysis

import (
	"time"

	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
	"github.com/thumbert/bust-sub001/internal/holiday"
)

// Pair is one (bucket, zoned term) request.
type Pair struct {
	Bucket bucket.Bucket
	Term   calendar.TermTz
}

// Count is the number of hours of Pair.Term that fall in Pair.Bucket.
type Count struct {
	Pair
	Hours int
}

// Counter counts bucket hours. The zero value uses the process-wide NERC
// holiday calendar.
type Counter struct {
	Holidays *holiday.Calendar
	// IsHoliday, when set, replaces Holidays as the holiday source.
	IsHoliday func(calendar.Date) bool
}

// expandTerm turns a zoned term into per-hour bucket attributes.
var expandTerm = termAttrs

// CountHours counts every pair with the zero Counter.
func CountHours(pairs []Pair) []Count {
	var c Counter
	return c.CountHours(pairs)
}

// CountHoursOne counts a single pair with the zero Counter.
func CountHoursOne(b bucket.Bucket, t calendar.TermTz) int {
	var c Counter
	return c.CountHoursOne(b, t)
}

// CountHours returns one Count per pair, in input order. Hours of a zoned term
// are generated once per call no matter how many buckets ask for it, and each
// date is checked against the holiday calendar at most once per call.
func (c *Counter) CountHours(pairs []Pair) []Count {
	out := make([]Count, len(pairs))
	if len(pairs) == 0 {
		return out
	}

	isHoliday := c.holidayCache()
	attrs := make(map[calendar.TermKey][]bucket.Attrs)
	for i, p := range pairs {
		key := p.Term.Key()
		v, ok := attrs[key]
		if !ok {
			v = expandTerm(p.Term, isHoliday)
			attrs[key] = v
		}
		out[i] = Count{Pair: p, Hours: countMatching(p.Bucket, v)}
	}
	return out
}

func (c *Counter) CountHoursOne(b bucket.Bucket, t calendar.TermTz) int {
	return c.CountHours([]Pair{{Bucket: b, Term: t}})[0].Hours
}

// FilterHours returns the hours of t that belong to b, in order.
func (c *Counter) FilterHours(b bucket.Bucket, t calendar.TermTz) []calendar.Hour {
	isHoliday := c.holidayCache()
	var out []calendar.Hour
	for h := range t.Hours() {
		if b.Matches(bucket.AttrsOf(h, isHoliday)) {
			out = append(out, h)
		}
	}
	return out
}

// FilterTimes keeps the instants whose hour, read in the instant's own
// location, belongs to b. Order is preserved.
func (c *Counter) FilterTimes(b bucket.Bucket, times []time.Time) []time.Time {
	isHoliday := c.holidayCache()
	out := make([]time.Time, 0, len(times))
	for _, t := range times {
		if b.Matches(bucket.AttrsOf(calendar.NewHour(t), isHoliday)) {
			out = append(out, t)
		}
	}
	return out
}

// holidayCache wraps the holiday source in a per-call date memo.
func (c *Counter) holidayCache() func(calendar.Date) bool {
	src := holiday.IsHoliday
	switch {
	case c == nil:
	case c.IsHoliday != nil:
		src = c.IsHoliday
	case c.Holidays != nil:
		src = c.Holidays.IsHoliday
	}
	seen := make(map[calendar.Date]bool)
	return func(d calendar.Date) bool {
		v, ok := seen[d]
		if !ok {
			v = src(d)
			seen[d] = v
		}
		return v
	}
}

func termAttrs(t calendar.TermTz, isHoliday func(calendar.Date) bool) []bucket.Attrs {
	out := make([]bucket.Attrs, 0, t.HourCount())
	for h := range t.Hours() {
		out = append(out, bucket.AttrsOf(h, isHoliday))
	}
	return out
}

func countMatching(b bucket.Bucket, attrs []bucket.Attrs) int {
	if b == bucket.Atc {
		return len(attrs)
	}
	n := 0
	for _, a := range attrs {
		if b.Matches(a) {
			n++
		}
	}
	return n
}
