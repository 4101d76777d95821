package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reCal     = regexp.MustCompile(`^cal\s*(\d{2}|\d{4})$`)
	reQuarter = regexp.MustCompile(`^q([1-4])[\s,\-]*(\d{2}|\d{4})$`)
	reMonth   = regexp.MustCompile(`^([a-z]{3})\s*(\d{2}|\d{4})$`)
	reDay     = regexp.MustCompile(`^(\d{1,2})\s*([a-z]{3})\s*(\d{2}|\d{4})$`)
	reISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reQToken  = regexp.MustCompile(`^[qQ][1-4]$`)
)

var monthAbbr = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseTerm parses `<designator>["[" <zone> "]"]`. The location is nil when the
// string carries no bracketed zone.
func ParseTerm(s string) (Term, *time.Location, error) {
	input := strings.TrimSpace(s)
	designator, zone, hasZone, err := splitZone(input)
	if err != nil {
		return Term{}, nil, &TermError{Input: s, Err: err}
	}

	term, err := parseDesignator(designator)
	if err != nil {
		return Term{}, nil, &TermError{Input: s, Err: err}
	}
	if err := checkYears(term.Start, term.Last()); err != nil {
		return Term{}, nil, &TermError{Input: s, Err: err}
	}
	term.Name = designator

	if !hasZone {
		return term, nil, nil
	}
	loc, err := LoadLocation(zone)
	if err != nil {
		return Term{}, nil, &TermError{Input: s, Err: err}
	}
	return term, loc, nil
}

// ParseTermTz parses a term and attaches its bracketed zone, or def when the
// string has none. It fails with ErrMissingZone if neither is available.
func ParseTermTz(s string, def *time.Location) (TermTz, error) {
	term, loc, err := ParseTerm(s)
	if err != nil {
		return TermTz{}, err
	}
	if loc == nil {
		loc = def
	}
	if loc == nil {
		return TermTz{}, &TermError{Input: s, Err: ErrMissingZone}
	}
	return TermTz{Term: term, Loc: loc}, nil
}

// ParseTermTzList parses a comma-separated list of terms (see SplitTermList).
func ParseTermTzList(s string, def *time.Location) ([]TermTz, error) {
	parts := SplitTermList(s)
	out := make([]TermTz, 0, len(parts))
	for _, p := range parts {
		t, err := ParseTermTz(p, def)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// SplitTermList splits a comma-separated list of terms. Commas inside a
// bracketed zone, and the comma of a quarter designator ("Q1,22"), do not
// separate terms. Empty items are dropped.
func SplitTermList(s string) []string {
	var out []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if p := strings.TrimSpace(cur.String()); p != "" {
			out = append(out, p)
		}
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case r == ',' && depth == 0 && !reQToken.MatchString(strings.TrimSpace(cur.String())):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return out
}

func splitZone(s string) (designator, zone string, hasZone bool, err error) {
	open := strings.LastIndex(s, "[")
	if open < 0 {
		if strings.Contains(s, "]") {
			return "", "", false, fmt.Errorf("%w: unbalanced ']'", ErrUnknownDesignator)
		}
		return s, "", false, nil
	}
	if !strings.HasSuffix(s, "]") {
		return "", "", false, fmt.Errorf("%w: zone must close the term with ']'", ErrUnknownDesignator)
	}
	designator = strings.TrimSpace(s[:open])
	zone = strings.TrimSpace(s[open+1 : len(s)-1])
	if zone == "" {
		return "", "", false, fmt.Errorf("%w %q", ErrUnknownZone, zone)
	}
	return designator, zone, true, nil
}

func parseDesignator(s string) (Term, error) {
	if s == "" {
		return Term{}, fmt.Errorf("%w: empty", ErrUnknownDesignator)
	}
	l := strings.ToLower(s)

	if m := reCal.FindStringSubmatch(l); m != nil {
		y, err := parseYear(m[1])
		if err != nil {
			return Term{}, err
		}
		return Term{Start: NewDate(y, time.January, 1), End: NewDate(y+1, time.January, 1)}, nil
	}
	if m := reQuarter.FindStringSubmatch(l); m != nil {
		q, _ := strconv.Atoi(m[1])
		y, err := parseYear(m[2])
		if err != nil {
			return Term{}, err
		}
		first := NewDate(y, time.Month(3*(q-1)+1), 1)
		return Term{Start: first, End: NewDate(y, first.Month+3, 1)}, nil
	}
	if strings.Contains(l, "/") {
		parts := strings.Split(l, "/")
		if len(parts) != 2 {
			return Term{}, fmt.Errorf("%w %q", ErrUnknownDesignator, s)
		}
		first, err := parseISO(parts[0])
		if err != nil {
			return Term{}, err
		}
		last, err := parseISO(parts[1])
		if err != nil {
			return Term{}, err
		}
		return NewTerm(first, last)
	}
	if reISODate.MatchString(l) {
		d, err := parseISO(l)
		if err != nil {
			return Term{}, err
		}
		return NewTerm(d, d)
	}
	if strings.Contains(l, "-") {
		parts := strings.Split(l, "-")
		if len(parts) != 2 {
			return Term{}, fmt.Errorf("%w %q", ErrUnknownDesignator, s)
		}
		first, err := parseSingle(strings.TrimSpace(parts[0]))
		if err != nil {
			return Term{}, err
		}
		last, err := parseSingle(strings.TrimSpace(parts[1]))
		if err != nil {
			return Term{}, err
		}
		if first.Start.After(last.Last()) {
			return Term{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, first.Start, last.Last())
		}
		return Term{Start: first.Start, End: last.End}, nil
	}
	return parseSingle(l)
}

// parseSingle handles the range-free forms MonYY and DMonYY.
func parseSingle(l string) (Term, error) {
	if m := reMonth.FindStringSubmatch(l); m != nil {
		mon, ok := monthAbbr[m[1]]
		if !ok {
			return Term{}, fmt.Errorf("%w: unknown month %q", ErrUnknownDesignator, m[1])
		}
		y, err := parseYear(m[2])
		if err != nil {
			return Term{}, err
		}
		first := NewDate(y, mon, 1)
		return Term{Start: first, End: NewDate(y, mon+1, 1)}, nil
	}
	if m := reDay.FindStringSubmatch(l); m != nil {
		mon, ok := monthAbbr[m[2]]
		if !ok {
			return Term{}, fmt.Errorf("%w: unknown month %q", ErrUnknownDesignator, m[2])
		}
		y, err := parseYear(m[3])
		if err != nil {
			return Term{}, err
		}
		day, _ := strconv.Atoi(m[1])
		d := NewDate(y, mon, day)
		if d.Month != mon || d.Day != day {
			return Term{}, fmt.Errorf("%w: no such day %q", ErrUnknownDesignator, l)
		}
		return NewTerm(d, d)
	}
	return Term{}, fmt.Errorf("%w %q", ErrUnknownDesignator, l)
}

func parseISO(s string) (Date, error) {
	d, err := ParseDate(strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrUnknownDesignator, err)
	}
	return d, nil
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad year %q", ErrUnknownDesignator, s)
	}
	if len(s) == 2 {
		y += 2000
	}
	return y, nil
}
