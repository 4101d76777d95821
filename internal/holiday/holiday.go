// Package holiday implements the NERC holiday calendar used by the on-peak
// bucket definitions.
//
// The rule set is fixed: New Year's Day, Memorial Day, Independence Day, Labor
// Day, Thanksgiving and Christmas. The three fixed-date holidays move to the
// Friday before when they fall on a Saturday and to the Monday after when they
// fall on a Sunday; the floating ones never move. Only the observed date counts
// as a holiday.
package holiday

import (
	"sort"
	"sync"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/thumbert/bust-sub001/internal/calendar"
)

// nerc is the rule table, in calendar order.
var nerc = []*cal.Holiday{
	us.NewYear,
	us.MemorialDay,
	us.IndependenceDay,
	us.LaborDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// Holiday is one observed occurrence.
type Holiday struct {
	Name    string        `json:"name"`
	Date    calendar.Date `json:"date"`
	Actual  calendar.Date `json:"actual"`
	Shifted bool          `json:"shifted"`
}

// Observed lists the holidays observed during year, in date order. A New Year's
// Day falling on Saturday shows up in the previous year's list.
func Observed(year int) []Holiday {
	var out []Holiday
	for _, y := range [2]int{year, year + 1} {
		for _, h := range nerc {
			act, obs := h.Calc(y)
			if obs.IsZero() {
				continue
			}
			od := calendar.DateOf(obs)
			if od.Year != year {
				continue
			}
			ad := calendar.DateOf(act)
			out = append(out, Holiday{Name: h.Name, Date: od, Actual: ad, Shifted: od != ad})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Calendar memoizes the observed holiday set per year. It is safe for
// concurrent use; each year is computed at most once per Calendar (a racing
// duplicate computation produces the same immutable set).
type Calendar struct {
	mu    sync.RWMutex
	years map[int]map[calendar.Date]string
}

func NewCalendar() *Calendar {
	return &Calendar{years: make(map[int]map[calendar.Date]string)}
}

var (
	defaultCal  *Calendar
	defaultOnce sync.Once
)

// Default returns the process-wide calendar, created on first use.
func Default() *Calendar {
	defaultOnce.Do(func() {
		defaultCal = NewCalendar()
	})
	return defaultCal
}

// IsHoliday reports whether d is an observed NERC holiday, using the
// process-wide calendar.
func IsHoliday(d calendar.Date) bool {
	return Default().IsHoliday(d)
}

func (c *Calendar) IsHoliday(d calendar.Date) bool {
	_, ok := c.year(d.Year)[d]
	return ok
}

// Name returns the holiday observed on d, if any.
func (c *Calendar) Name(d calendar.Date) (string, bool) {
	name, ok := c.year(d.Year)[d]
	return name, ok
}

func (c *Calendar) year(y int) map[calendar.Date]string {
	c.mu.RLock()
	set, ok := c.years[y]
	c.mu.RUnlock()
	if ok {
		return set
	}

	set = make(map[calendar.Date]string, len(nerc))
	for _, h := range Observed(y) {
		set[h.Date] = h.Name
	}

	c.mu.Lock()
	if existing, ok := c.years[y]; ok {
		set = existing
	} else {
		c.years[y] = set
	}
	c.mu.Unlock()
	return set
}
