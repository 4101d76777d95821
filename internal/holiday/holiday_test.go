package holiday

import (
	"sync"
	"testing"
	"time"

	"github.com/thumbert/bust-sub001/internal/calendar"
)

func d(y int, m time.Month, day int) calendar.Date {
	return calendar.Date{Year: y, Month: m, Day: day}
}

func TestIsHoliday(t *testing.T) {
	tests := []struct {
		name string
		date calendar.Date
		want bool
	}{
		{"Memorial Day 2022", d(2022, time.May, 30), true},
		{"Independence Day 2022", d(2022, time.July, 4), true},
		{"Labor Day 2022", d(2022, time.September, 5), true},
		{"Thanksgiving 2022", d(2022, time.November, 24), true},
		{"Day after Thanksgiving", d(2022, time.November, 25), false},
		{"Christmas 2023 on Monday", d(2023, time.December, 25), true},
		{"Regular weekday", d(2022, time.June, 15), false},

		// Saturday holidays move to Friday.
		{"New Year 2022 observed Fri Dec 31 2021", d(2021, time.December, 31), true},
		{"New Year 2022 actual Saturday", d(2022, time.January, 1), false},
		{"Independence Day 2020 observed Fri", d(2020, time.July, 3), true},
		{"Independence Day 2020 actual Saturday", d(2020, time.July, 4), false},
		{"Christmas 2021 observed Fri", d(2021, time.December, 24), true},

		// Sunday holidays move to Monday.
		{"Christmas 2022 observed Mon", d(2022, time.December, 26), true},
		{"Christmas 2022 actual Sunday", d(2022, time.December, 25), false},
		{"New Year 2023 observed Mon", d(2023, time.January, 2), true},
		{"Independence Day 2021 observed Mon", d(2021, time.July, 5), true},

		{"Thanksgiving 1950", d(1950, time.November, 23), true},
		{"Christmas 2100", d(2100, time.December, 24), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestFloatingHolidaysNeverShift(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		for _, h := range Observed(year) {
			switch h.Actual.Month {
			case time.May, time.September:
				if h.Date.Weekday() != time.Monday || h.Shifted {
					t.Fatalf("%d %s: %s (%s) shifted=%v", year, h.Name, h.Date, h.Date.Weekday(), h.Shifted)
				}
			case time.November:
				if h.Date.Weekday() != time.Thursday || h.Shifted {
					t.Fatalf("%d %s: %s shifted=%v", year, h.Name, h.Date, h.Shifted)
				}
			}
		}
	}
}

func TestFixedHolidaysObservedOnWeekdays(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		for _, h := range Observed(year) {
			if h.Date.IsWeekend() {
				t.Fatalf("%s observed on a weekend: %s", h.Name, h.Date)
			}
			switch h.Actual.Weekday() {
			case time.Saturday:
				if h.Date != h.Actual.AddDays(-1) {
					t.Fatalf("%s on Saturday %s should be observed Friday, got %s", h.Name, h.Actual, h.Date)
				}
			case time.Sunday:
				if h.Date != h.Actual.AddDays(1) {
					t.Fatalf("%s on Sunday %s should be observed Monday, got %s", h.Name, h.Actual, h.Date)
				}
			default:
				if h.Date != h.Actual {
					t.Fatalf("%s on a weekday should not move: %s -> %s", h.Name, h.Actual, h.Date)
				}
			}
		}
	}
}

func TestObserved(t *testing.T) {
	got := Observed(2021)
	// New Year's Day 2021 (Fri) plus New Year's Day 2022 observed on Dec 31 2021.
	if len(got) != 7 {
		t.Fatalf("2021: got %d holidays: %v", len(got), got)
	}
	if got[0].Date != d(2021, time.January, 1) || got[6].Date != d(2021, time.December, 31) {
		t.Fatalf("2021: unexpected bounds %v", got)
	}
	if n := len(Observed(2022)); n != 5 {
		t.Fatalf("2022: got %d holidays, want 5", n)
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Date.Before(got[i].Date) {
			t.Fatalf("not sorted: %v", got)
		}
	}
}

func TestCalendarConcurrentUse(t *testing.T) {
	c := NewCalendar()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := 2000; y < 2030; y++ {
				if !c.IsHoliday(d(y, time.July, 4)) && d(y, time.July, 4).Weekday() != time.Saturday && d(y, time.July, 4).Weekday() != time.Sunday {
					t.Errorf("%d: July 4 on a weekday should be a holiday", y)
				}
			}
		}()
	}
	wg.Wait()
	if name, ok := c.Name(d(2022, time.November, 24)); !ok || name == "" {
		t.Fatalf("Name: got %q %v", name, ok)
	}
}
