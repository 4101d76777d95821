package calendar

import (
	"iter"
	"time"
)

// Hour is the half-open interval [Start, Start+1h) anchored to the location of
// its start instant. Across a fall-back transition two Hours share a wall-clock
// label but have distinct start instants.
type Hour struct {
	start time.Time
}

// NewHour returns the hour containing t, in t's location.
func NewHour(t time.Time) Hour {
	off := time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return Hour{start: t.Add(-off)}
}

func (h Hour) Start() time.Time { return h.start }

func (h Hour) End() time.Time { return h.start.Add(time.Hour) }

func (h Hour) Location() *time.Location { return h.start.Location() }

// Date is the local civil date of the hour start.
func (h Hour) Date() Date { return DateOf(h.start) }

// HourOfDay is the local hour beginning, 0..23.
func (h Hour) HourOfDay() int { return h.start.Hour() }

func (h Hour) Weekday() time.Weekday { return h.start.Weekday() }

func (h Hour) Contains(t time.Time) bool {
	return !t.Before(h.start) && t.Before(h.End())
}

func (h Hour) Next() Hour { return Hour{start: h.End()} }

func (h Hour) Equal(o Hour) bool { return h.start.Equal(o.start) }

func (h Hour) String() string {
	return h.start.Format("2006-01-02T15:04:05-07:00")
}

// hoursBetween steps through [start, end) one elapsed hour at a time. Stepping
// in absolute time drops the civil hour skipped at spring-forward and keeps both
// occurrences of the repeated civil hour at fall-back. The last hour is not
// clipped to end.
func hoursBetween(start, end time.Time) iter.Seq[Hour] {
	return func(yield func(Hour) bool) {
		for t := start; t.Before(end); t = t.Add(time.Hour) {
			if !yield(Hour{start: t}) {
				return
			}
		}
	}
}

func hourCount(start, end time.Time) int {
	if !start.Before(end) {
		return 0
	}
	d := end.Sub(start)
	n := int(d / time.Hour)
	if d%time.Hour != 0 {
		n++
	}
	return n
}
