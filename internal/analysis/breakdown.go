package analysis

import (
	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
)

// MonthBreakdown holds the bucket counts of the part of a term that falls in
// one calendar month.
type MonthBreakdown struct {
	Month  calendar.Month
	Term   calendar.TermTz
	Counts []Count
}

// BreakdownByMonth splits t at month boundaries and counts every bucket in each
// piece. Months are in order; counts follow the order of buckets.
func (c *Counter) BreakdownByMonth(buckets []bucket.Bucket, t calendar.TermTz) []MonthBreakdown {
	var (
		out   []MonthBreakdown
		pairs []Pair
	)
	for m := range t.Months() {
		piece := clip(t, m)
		out = append(out, MonthBreakdown{Month: m, Term: piece})
		for _, b := range buckets {
			pairs = append(pairs, Pair{Bucket: b, Term: piece})
		}
	}

	counts := c.CountHours(pairs)
	for i := range out {
		out[i].Counts = counts[i*len(buckets) : (i+1)*len(buckets)]
	}
	return out
}

// clip intersects t with m. A piece covering the whole month is named after it.
func clip(t calendar.TermTz, m calendar.Month) calendar.TermTz {
	start, end := m.First(), m.Next().First()
	if t.Term.Start.After(start) {
		start = t.Term.Start
	}
	if t.Term.End.Before(end) {
		end = t.Term.End
	}
	piece := calendar.Term{Start: start, End: end}
	if start == m.First() && end == m.Next().First() {
		piece.Name = m.Term().Term.Name
	}
	return calendar.TermTz{Term: piece, Loc: t.Loc}
}
