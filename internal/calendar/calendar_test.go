package calendar

import (
	"errors"
	"testing"
	"time"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}

func d(y int, m time.Month, day int) Date { return Date{Year: y, Month: m, Day: day} }

func TestDateArithmetic(t *testing.T) {
	if got := d(2022, 12, 31).AddDays(1); got != d(2023, 1, 1) {
		t.Fatalf("AddDays: got %s", got)
	}
	if got := d(2024, 3, 1).AddDays(-1); got != d(2024, 2, 29) {
		t.Fatalf("AddDays leap: got %s", got)
	}
	if got := d(2022, 1, 1).DaysUntil(d(2023, 1, 1)); got != 365 {
		t.Fatalf("DaysUntil: got %d", got)
	}
	if wd := d(2022, 1, 1).Weekday(); wd != time.Saturday {
		t.Fatalf("Weekday: got %s", wd)
	}
	if !d(2022, 1, 1).Before(d(2022, 1, 2)) || d(2022, 2, 1).Before(d(2022, 1, 31)) {
		t.Fatalf("Before ordering broken")
	}
	if got := NewDate(2022, 2, 30); got != d(2022, 3, 2) {
		t.Fatalf("NewDate normalization: got %s", got)
	}
	if _, err := ParseDate("2022-13-01"); err == nil {
		t.Fatalf("expected error for bad month")
	}
}

func TestDateStartIsFirstInstantOfDay(t *testing.T) {
	for _, zone := range []string{"America/New_York", "America/Havana", "Asia/Kolkata"} {
		loc := mustLoc(t, zone)
		for _, day := range []Date{d(2022, 3, 13), d(2022, 11, 6), d(2022, 7, 1)} {
			s := day.Start(loc)
			if DateOf(s) != day {
				t.Fatalf("%s %s: start %v is on another day", zone, day, s)
			}
			if DateOf(s.Add(-time.Minute)) == day {
				t.Fatalf("%s %s: start %v is not the first instant", zone, day, s)
			}
		}
	}
}

func TestParseTerm(t *testing.T) {
	cases := []struct {
		in    string
		first Date
		last  Date
		zone  string
	}{
		{"Cal22", d(2022, 1, 1), d(2022, 12, 31), ""},
		{"cal2022", d(2022, 1, 1), d(2022, 12, 31), ""},
		{"Q1,22", d(2022, 1, 1), d(2022, 3, 31), ""},
		{"Q3 22", d(2022, 7, 1), d(2022, 9, 30), ""},
		{"q4-22", d(2022, 10, 1), d(2022, 12, 31), ""},
		{"Q222", d(2022, 4, 1), d(2022, 6, 30), ""},
		{"Jan22", d(2022, 1, 1), d(2022, 1, 31), ""},
		{"FEB24", d(2024, 2, 1), d(2024, 2, 29), ""},
		{"Jan22-Mar22", d(2022, 1, 1), d(2022, 3, 31), ""},
		{"Nov22-Feb23", d(2022, 11, 1), d(2023, 2, 28), ""},
		{"5Jan22", d(2022, 1, 5), d(2022, 1, 5), ""},
		{"1Jan22-15Jan22", d(2022, 1, 1), d(2022, 1, 15), ""},
		{"2022-03-13", d(2022, 3, 13), d(2022, 3, 13), ""},
		{"2022-03-01/2022-03-31", d(2022, 3, 1), d(2022, 3, 31), ""},
		{"Cal22[America/New_York]", d(2022, 1, 1), d(2022, 12, 31), "America/New_York"},
		{" Jan23 [America/Los_Angeles] ", d(2023, 1, 1), d(2023, 1, 31), "America/Los_Angeles"},
	}
	for _, tc := range cases {
		term, loc, err := ParseTerm(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if term.Start != tc.first || term.Last() != tc.last {
			t.Fatalf("%q: got [%s, %s] want [%s, %s]", tc.in, term.Start, term.Last(), tc.first, tc.last)
		}
		switch {
		case tc.zone == "" && loc != nil:
			t.Fatalf("%q: unexpected zone %s", tc.in, loc)
		case tc.zone != "" && (loc == nil || loc.String() != tc.zone):
			t.Fatalf("%q: got zone %v want %s", tc.in, loc, tc.zone)
		}
	}
}

func TestParseTermErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrUnknownDesignator},
		{"Foo22", ErrUnknownDesignator},
		{"Cal22[America/New_York", ErrUnknownDesignator},
		{"31Feb22", ErrUnknownDesignator},
		{"Q5,22", ErrUnknownDesignator},
		{"Cal22[Mars/Olympus_Mons]", ErrUnknownZone},
		{"Cal22[]", ErrUnknownZone},
		{"Mar22-Jan22", ErrInvalidRange},
		{"2022-03-31/2022-03-01", ErrInvalidRange},
		{"0001-01-01/9999-12-31[UTC]", ErrInvalidRange},
		{"Cal2101", ErrInvalidRange},
		{"Dec1899-Jan1900", ErrInvalidRange},
		{"1899-12-31", ErrInvalidRange},
	}
	for _, tc := range cases {
		_, _, err := ParseTerm(tc.in)
		if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.in, err, tc.want)
		}
		var te *TermError
		if !errors.As(err, &te) || te.Input != tc.in {
			t.Fatalf("%q: expected *TermError carrying the input, got %#v", tc.in, err)
		}
	}
}

func TestTermYearBounds(t *testing.T) {
	for _, in := range []string{"Cal1900", "Cal2100", "1900-01-01/2100-12-31"} {
		if _, _, err := ParseTerm(in); err != nil {
			t.Fatalf("%q: %v", in, err)
		}
	}
	if _, err := NewTerm(d(2100, 12, 31), d(2101, 1, 1)); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("NewTerm past %d: got %v", MaxYear, err)
	}
}

func TestParseTermTzDefaultZone(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	tt, err := ParseTermTz("Cal22", ny)
	if err != nil {
		t.Fatal(err)
	}
	if tt.Loc != ny {
		t.Fatalf("default zone not applied")
	}
	la := mustLoc(t, "America/Los_Angeles")
	tt, err = ParseTermTz("Cal22[America/Los_Angeles]", ny)
	if err != nil {
		t.Fatal(err)
	}
	if tt.Loc.String() != la.String() {
		t.Fatalf("bracketed zone must win over default, got %s", tt.Loc)
	}
	if _, err := ParseTermTz("Cal22", nil); !errors.Is(err, ErrMissingZone) {
		t.Fatalf("expected ErrMissingZone, got %v", err)
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	for _, in := range []string{"Cal22", "Q2,23", "Jan22", "Jan22-Mar22", "5Jan22", "1Jan22-15Jan22", "Cal1999", "Dec2100"} {
		term, _, err := ParseTerm(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		back, _, err := ParseTerm(term.Canonical())
		if err != nil {
			t.Fatalf("%q canonical %q: %v", in, term.Canonical(), err)
		}
		if !back.Equal(term) {
			t.Fatalf("%q: canonical %q parsed to a different term", in, term.Canonical())
		}
	}
	term, _, _ := ParseTerm("2022-01-01/2022-12-31")
	if got := term.Canonical(); got != "Cal22" {
		t.Fatalf("canonical of a full year: got %q", got)
	}
}

func TestTermEqualityIgnoresName(t *testing.T) {
	a, _, _ := ParseTerm("Cal22")
	b, _, _ := ParseTerm("Jan22-Dec22")
	if !a.Equal(b) || a.Compare(b) != 0 {
		t.Fatalf("expected equal terms")
	}
	if a.String() == b.String() {
		t.Fatalf("display names should be preserved")
	}
	c, _, _ := ParseTerm("Q1,22")
	if c.Compare(a) >= 0 {
		t.Fatalf("Q1,22 should order before Cal22 (same start, earlier end)")
	}
}

func TestSplitTermList(t *testing.T) {
	got := SplitTermList("Cal22[America/New_York], Q1,22 ,Jan23-Mar23,,Q4,22[America/Los_Angeles]")
	want := []string{"Cal22[America/New_York]", "Q1,22", "Jan23-Mar23", "Q4,22[America/Los_Angeles]"}
	if len(got) != len(want) {
		t.Fatalf("got %q want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestHoursAcrossDST(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	cases := []struct {
		term string
		want int
	}{
		{"2022-03-13", 23},
		{"2022-11-06", 25},
		{"2022-07-01", 24},
		{"Mar22", 31*24 - 1},
		{"Nov22", 30*24 + 1},
		{"Cal22", 8760},
		{"Cal24", 8784},
	}
	for _, tc := range cases {
		tt, err := ParseTermTz(tc.term, ny)
		if err != nil {
			t.Fatal(err)
		}
		n := 0
		for range tt.Hours() {
			n++
		}
		if n != tc.want {
			t.Fatalf("%s: got %d hours want %d", tc.term, n, tc.want)
		}
		if tt.HourCount() != tc.want {
			t.Fatalf("%s: HourCount %d want %d", tc.term, tt.HourCount(), tc.want)
		}
	}
}

func TestHoursHalfHourShift(t *testing.T) {
	// Lord Howe Island springs forward 30 minutes on 2 Oct 2022.
	tt, err := ParseTermTz("2Oct22[Australia/Lord_Howe]", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := tt.End().Sub(tt.Start()); got != 23*time.Hour+30*time.Minute {
		t.Fatalf("day length %s", got)
	}
	if got := tt.HourCount(); got != 24 {
		t.Fatalf("hour count %d", got)
	}
	var (
		n    int
		last Hour
	)
	for h := range tt.Hours() {
		if n > 0 && !last.End().Equal(h.Start()) {
			t.Fatalf("gap between %s and %s", last, h)
		}
		last = h
		n++
	}
	if n != 24 {
		t.Fatalf("yielded %d hours", n)
	}
	if !last.Start().Before(tt.End()) {
		t.Fatalf("last hour %s starts after the term", last)
	}
	if over := last.End().Sub(tt.End()); over != 30*time.Minute {
		t.Fatalf("last hour overruns the term by %s", over)
	}
}

func TestHoursCoverTermExactly(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	tt, err := ParseTermTz("Cal22", ny)
	if err != nil {
		t.Fatal(err)
	}
	type label struct {
		date Date
		hour int
	}
	seen := map[label]int{}
	var prev *Hour
	for h := range tt.Hours() {
		if prev == nil {
			if !h.Start().Equal(tt.Start()) {
				t.Fatalf("first hour %s does not start the term", h)
			}
		} else if !prev.End().Equal(h.Start()) {
			t.Fatalf("gap or overlap between %s and %s", prev, h)
		}
		hh := h
		prev = &hh
		seen[label{h.Date(), h.HourOfDay()}]++
	}
	if !prev.End().Equal(tt.End()) {
		t.Fatalf("last hour %s does not end the term", prev)
	}

	for day := range tt.Days() {
		for hr := 0; hr < 24; hr++ {
			n := seen[label{day, hr}]
			want := 1
			switch {
			case day == d(2022, 3, 13) && hr == 2:
				want = 0
			case day == d(2022, 11, 6) && hr == 1:
				want = 2
			}
			if n != want {
				t.Fatalf("%s hour %d seen %d times, want %d", day, hr, n, want)
			}
		}
	}
}

func TestSequencesAreRestartable(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	tt, _ := ParseTermTz("Q1,22", ny)
	count := func() int {
		n := 0
		for range tt.Hours() {
			n++
		}
		return n
	}
	first := count()
	for h := range tt.Hours() {
		_ = h
		break
	}
	if second := count(); second != first {
		t.Fatalf("second pass yielded %d, first %d", second, first)
	}
}

func TestMonthsAndYears(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	tt, _ := ParseTermTz("Nov22-Feb23", ny)

	var months []Month
	for m := range tt.Months() {
		months = append(months, m)
	}
	if len(months) != 4 || months[0].String() != "2022-11" || months[3].String() != "2023-02" {
		t.Fatalf("months: %v", months)
	}
	total := 0
	for _, m := range months {
		total += hourCount(m.Start(), m.End())
	}
	if total != tt.HourCount() {
		t.Fatalf("month hours %d != term hours %d", total, tt.HourCount())
	}

	years := 0
	for range tt.Years() {
		years++
	}
	if years != 2 {
		t.Fatalf("years: got %d", years)
	}
}

func TestMonth(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	m := NewMonth(2022, 13, ny)
	if m.Year != 2023 || m.Month != time.January {
		t.Fatalf("normalization: %v", m)
	}
	if p := m.Previous(); p.Year != 2022 || p.Month != time.December {
		t.Fatalf("Previous: %v", p)
	}
	if a := m.Add(-13); a.Year != 2021 || a.Month != time.December {
		t.Fatalf("Add(-13): %v", a)
	}
	if n := NewMonth(2024, time.February, ny).DayCount(); n != 29 {
		t.Fatalf("DayCount: %d", n)
	}
	s := NewMonth(2022, time.March, ny).Start()
	if s.Hour() != 0 || s.Day() != 1 || s.Location() != ny {
		t.Fatalf("Start must be local midnight of day 1, got %v", s)
	}
	if !NewMonth(2022, time.March, ny).Start().Before(NewMonth(2022, time.March, ny).End()) {
		t.Fatalf("start must precede end")
	}
	days := 0
	for range NewMonth(2022, time.March, ny).Days() {
		days++
	}
	if days != 31 {
		t.Fatalf("Days: %d", days)
	}
	if got := NewMonth(2022, time.March, ny).Term().String(); got != "Mar22[America/New_York]" {
		t.Fatalf("Term: %s", got)
	}
}

func TestNewHour(t *testing.T) {
	kol := mustLoc(t, "Asia/Kolkata")
	h := NewHour(time.Date(2022, 5, 1, 10, 42, 7, 5, kol))
	if h.Start().Minute() != 0 || h.HourOfDay() != 10 {
		t.Fatalf("NewHour must truncate on the local clock, got %s", h)
	}
	if !h.Contains(time.Date(2022, 5, 1, 10, 59, 0, 0, kol)) || h.Contains(h.End()) {
		t.Fatalf("Contains must be half-open")
	}
}
