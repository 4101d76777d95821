package calendar

import (
	"fmt"
	"iter"
	"time"
)

// Term is a contiguous civil date range [Start, End). Name is the display
// string the term was parsed from, if any; it takes no part in equality.
type Term struct {
	Start Date
	End   Date
	Name  string
}

// Terms must lie within the years the holiday calendar covers.
const (
	MinYear = 1900
	MaxYear = 2100
)

// NewTerm builds a term from inclusive bounds.
func NewTerm(first, last Date) (Term, error) {
	if first.After(last) {
		return Term{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, first, last)
	}
	if err := checkYears(first, last); err != nil {
		return Term{}, err
	}
	return Term{Start: first, End: last.AddDays(1)}, nil
}

func checkYears(first, last Date) error {
	if first.Year < MinYear || last.Year > MaxYear {
		return fmt.Errorf("%w: %s..%s is outside %d-%d", ErrInvalidRange, first, last, MinYear, MaxYear)
	}
	return nil
}

// Last is the final day of the term (inclusive).
func (t Term) Last() Date { return t.End.AddDays(-1) }

func (t Term) DayCount() int { return t.Start.DaysUntil(t.End) }

func (t Term) Contains(d Date) bool {
	return !d.Before(t.Start) && d.Before(t.End)
}

func (t Term) Equal(o Term) bool {
	return t.Start == o.Start && t.End == o.End
}

// Compare orders terms by start, then end.
func (t Term) Compare(o Term) int {
	if c := t.Start.Compare(o.Start); c != 0 {
		return c
	}
	return t.End.Compare(o.End)
}

func (t Term) Days() iter.Seq[Date] { return daysBetween(t.Start, t.End) }

// Months yields every month that intersects the term, in UTC.
func (t Term) Months() iter.Seq[Month] { return monthsOf(t, nil) }

// Years yields every year that intersects the term, in UTC.
func (t Term) Years() iter.Seq[Year] { return yearsOf(t, nil) }

func (t Term) WithTz(loc *time.Location) TermTz {
	if loc == nil {
		loc = time.UTC
	}
	return TermTz{Term: t, Loc: loc}
}

// String returns the display name, falling back to the canonical designator.
func (t Term) String() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Canonical()
}

// Canonical renders the shortest designator that parses back to t:
// Cal22, Q1,22, Jan22, Jan22-Mar22, 5Jan22 or 1Jan22-15Jan22.
func (t Term) Canonical() string {
	first, last := t.Start, t.Last()
	if first.Day == 1 && t.End.Day == 1 {
		switch {
		case first.Month == time.January && t.End == NewDate(first.Year+1, time.January, 1):
			return "Cal" + yearToken(first.Year)
		case (first.Month-1)%3 == 0 && t.End == NewDate(first.Year, first.Month+3, 1):
			return fmt.Sprintf("Q%d,%s", (first.Month-1)/3+1, yearToken(first.Year))
		case t.End == NewDate(first.Year, first.Month+1, 1):
			return monthToken(first)
		default:
			return monthToken(first) + "-" + monthToken(last)
		}
	}
	if first == last {
		return dayToken(first)
	}
	return dayToken(first) + "-" + dayToken(last)
}

func yearToken(y int) string {
	if y >= 2000 && y <= 2099 {
		return fmt.Sprintf("%02d", y-2000)
	}
	return fmt.Sprintf("%d", y)
}

func monthToken(d Date) string {
	return d.Month.String()[:3] + yearToken(d.Year)
}

func dayToken(d Date) string {
	return fmt.Sprintf("%d%s", d.Day, monthToken(d))
}

// TermTz is a term with a resolved time zone.
type TermTz struct {
	Term Term
	Loc  *time.Location
}

// TermKey identifies a zoned term by value: resolved bounds and zone name.
type TermKey struct {
	Start Date
	End   Date
	Zone  string
}

func (t TermTz) location() *time.Location {
	if t.Loc == nil {
		return time.UTC
	}
	return t.Loc
}

func (t TermTz) Key() TermKey {
	return TermKey{Start: t.Term.Start, End: t.Term.End, Zone: t.location().String()}
}

func (t TermTz) Equal(o TermTz) bool { return t.Key() == o.Key() }

// Start is the first instant of the term in its zone.
func (t TermTz) Start() time.Time { return t.Term.Start.Start(t.location()) }

// End is the exclusive end instant.
func (t TermTz) End() time.Time { return t.Term.End.Start(t.location()) }

func (t TermTz) Days() iter.Seq[Date] { return t.Term.Days() }

// Hours yields the term's elapsed hours from Start. Where a DST shift is not a
// whole hour (Australia/Lord_Howe moves by 30 minutes) the term is not a whole
// number of hours, and the last hour runs past End by the remainder.
func (t TermTz) Hours() iter.Seq[Hour] { return hoursBetween(t.Start(), t.End()) }

// HourCount is the number of hours Hours yields, without generating them.
func (t TermTz) HourCount() int { return hourCount(t.Start(), t.End()) }

func (t TermTz) Months() iter.Seq[Month] { return monthsOf(t.Term, t.location()) }

func (t TermTz) Years() iter.Seq[Year] { return yearsOf(t.Term, t.location()) }

// String renders the term with its zone, e.g. "Cal22[America/New_York]".
func (t TermTz) String() string {
	return fmt.Sprintf("%s[%s]", t.Term.String(), t.location())
}

func monthsOf(t Term, loc *time.Location) iter.Seq[Month] {
	return func(yield func(Month) bool) {
		if !t.Start.Before(t.End) {
			return
		}
		for m := (Month{Year: t.Start.Year, Month: t.Start.Month, Loc: loc}); m.First().Before(t.End); m = m.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

func yearsOf(t Term, loc *time.Location) iter.Seq[Year] {
	return func(yield func(Year) bool) {
		if !t.Start.Before(t.End) {
			return
		}
		for y := (Year{Year: t.Start.Year, Loc: loc}); y.First().Before(t.End); y = y.Next() {
			if !yield(y) {
				return
			}
		}
	}
}
