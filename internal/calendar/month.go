package calendar

import (
	"fmt"
	"iter"
	"time"
)

// Month is a calendar month bound to a location. A nil Loc means UTC.
type Month struct {
	Year  int
	Month time.Month
	Loc   *time.Location
}

// NewMonth normalizes month overflow (month 13 is January of the next year).
func NewMonth(year int, month time.Month, loc *time.Location) Month {
	d := NewDate(year, month, 1)
	return Month{Year: d.Year, Month: d.Month, Loc: loc}
}

// MonthOf returns the month containing t in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month(), Loc: t.Location()}
}

func (m Month) location() *time.Location {
	if m.Loc == nil {
		return time.UTC
	}
	return m.Loc
}

func (m Month) First() Date { return Date{Year: m.Year, Month: m.Month, Day: 1} }

func (m Month) Last() Date { return m.Next().First().AddDays(-1) }

// Start is the first instant of day 1 in the month's location.
func (m Month) Start() time.Time { return m.First().Start(m.location()) }

// End is exclusive: the start of the following month.
func (m Month) End() time.Time { return m.Next().Start() }

func (m Month) Add(n int) Month {
	return NewMonth(m.Year, m.Month+time.Month(n), m.Loc)
}

func (m Month) Next() Month     { return m.Add(1) }
func (m Month) Previous() Month { return m.Add(-1) }

func (m Month) DayCount() int { return m.First().DaysUntil(m.Next().First()) }

func (m Month) Days() iter.Seq[Date] {
	return daysBetween(m.First(), m.Next().First())
}

func (m Month) Hours() iter.Seq[Hour] {
	return hoursBetween(m.Start(), m.End())
}

func (m Month) Compare(o Month) int {
	if m.Year != o.Year {
		return cmpInt(m.Year, o.Year)
	}
	return cmpInt(int(m.Month), int(o.Month))
}

// Term returns the month as a zoned term named like "Jan22".
func (m Month) Term() TermTz {
	t := Term{Start: m.First(), End: m.Next().First()}
	t.Name = t.Canonical()
	return TermTz{Term: t, Loc: m.location()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Year is a calendar year bound to a location. A nil Loc means UTC.
type Year struct {
	Year int
	Loc  *time.Location
}

func (y Year) location() *time.Location {
	if y.Loc == nil {
		return time.UTC
	}
	return y.Loc
}

func (y Year) First() Date { return Date{Year: y.Year, Month: time.January, Day: 1} }

func (y Year) Start() time.Time { return y.First().Start(y.location()) }

func (y Year) End() time.Time { return y.Next().Start() }

func (y Year) Next() Year     { return Year{Year: y.Year + 1, Loc: y.Loc} }
func (y Year) Previous() Year { return Year{Year: y.Year - 1, Loc: y.Loc} }

func (y Year) Months() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for m := time.January; m <= time.December; m++ {
			if !yield(Month{Year: y.Year, Month: m, Loc: y.Loc}) {
				return
			}
		}
	}
}

func (y Year) Hours() iter.Seq[Hour] {
	return hoursBetween(y.Start(), y.End())
}

func (y Year) String() string { return fmt.Sprintf("%04d", y.Year) }

func daysBetween(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := start; d.Before(end); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}
