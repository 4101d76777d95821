// Package bucket classifies hours into trading buckets.
//
// Every predicate looks at the local weekday, local hour beginning and holiday
// status of the hour start, in the hour's own zone. Eastern (NERC) buckets use
// the HE8-HE23 on-peak window with Monday-Friday business days; the CAISO
// buckets use HE7-HE22 with Monday-Saturday business days.
package bucket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thumbert/bust-sub001/internal/calendar"
	"github.com/thumbert/bust-sub001/internal/holiday"
)

type Bucket uint8

const (
	Atc Bucket = iota
	B5x16
	B2x16H
	B7x8
	Offpeak
	B7x16
	Caiso6x16
	Caiso1x16H
	Caiso7x8
	CaisoOffpeak
)

const (
	RegionAll   = "all"
	RegionNERC  = "nerc"
	RegionCAISO = "caiso"
)

// On-peak windows as [start, end) hour beginnings.
const (
	eastPeakStart  = 7
	eastPeakEnd    = 23
	caisoPeakStart = 6
	caisoPeakEnd   = 22
)

type info struct {
	name        string
	aliases     []string
	region      string
	holidays    bool
	description string
}

var table = [...]info{
	Atc:          {"atc", []string{"7x24", "flat"}, RegionAll, false, "All hours"},
	B5x16:        {"5x16", []string{"peak", "onpeak"}, RegionNERC, true, "HE8-HE23, Mon-Fri, excluding NERC holidays"},
	B2x16H:       {"2x16H", nil, RegionNERC, true, "HE8-HE23, Sat-Sun and NERC holidays"},
	B7x8:         {"7x8", nil, RegionNERC, false, "HE1-HE7 and HE24, every day"},
	Offpeak:      {"offpeak", []string{"off-peak", "wrap"}, RegionNERC, true, "All hours not in 5x16"},
	B7x16:        {"7x16", nil, RegionNERC, false, "HE8-HE23, every day"},
	Caiso6x16:    {"caiso_6x16", []string{"caiso_peak"}, RegionCAISO, true, "HE7-HE22, Mon-Sat, excluding NERC holidays"},
	Caiso1x16H:   {"caiso_1x16H", nil, RegionCAISO, true, "HE7-HE22, Sundays and NERC holidays"},
	Caiso7x8:     {"caiso_7x8", nil, RegionCAISO, false, "HE1-HE6 and HE23-HE24, every day"},
	CaisoOffpeak: {"caiso_offpeak", []string{"caiso_wrap"}, RegionCAISO, true, "All hours not in caiso_6x16"},
}

var lookup = func() map[string]Bucket {
	m := make(map[string]Bucket)
	for i, in := range table {
		for _, tok := range append([]string{in.name}, in.aliases...) {
			key := strings.ToLower(tok)
			if _, dup := m[key]; dup {
				panic(fmt.Sprintf("bucket: duplicate token %q", tok))
			}
			m[key] = Bucket(i)
		}
	}
	return m
}()

// ErrUnknownBucket is matched (errors.Is) by every *ParseError.
var ErrUnknownBucket = errors.New("unrecognized bucket token")

type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized bucket token %q", e.Token)
}

func (e *ParseError) Unwrap() error { return ErrUnknownBucket }

// All returns every bucket in declaration order.
func All() []Bucket {
	out := make([]Bucket, len(table))
	for i := range table {
		out[i] = Bucket(i)
	}
	return out
}

// Parse accepts a canonical name or alias, ignoring case and surrounding space.
func Parse(s string) (Bucket, error) {
	b, ok := lookup[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &ParseError{Token: s}
	}
	return b, nil
}

// ParseList parses a comma-separated list of buckets, skipping empty items.
func ParseList(s string) ([]Bucket, error) {
	var out []Bucket
	for _, tok := range strings.Split(s, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		b, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (b Bucket) Valid() bool { return int(b) < len(table) }

// String returns the canonical name, e.g. "2x16H".
func (b Bucket) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Bucket(%d)", uint8(b))
	}
	return table[b].name
}

func (b Bucket) Aliases() []string {
	if !b.Valid() {
		return nil
	}
	return append([]string(nil), table[b].aliases...)
}

func (b Bucket) Region() string {
	if !b.Valid() {
		return ""
	}
	return table[b].region
}

func (b Bucket) Description() string {
	if !b.Valid() {
		return ""
	}
	return table[b].description
}

// UsesHolidays reports whether the predicate depends on holiday status.
func (b Bucket) UsesHolidays() bool {
	return b.Valid() && table[b].holidays
}

func (b Bucket) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid bucket %d", uint8(b))
	}
	return []byte(b.String()), nil
}

func (b *Bucket) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Attrs are the only properties of an hour the predicates look at.
type Attrs struct {
	Weekday time.Weekday
	Hour    int
	Holiday bool
}

// AttrsOf extracts the local attributes of h. A nil isHoliday treats every day
// as a non-holiday.
func AttrsOf(h calendar.Hour, isHoliday func(calendar.Date) bool) Attrs {
	a := Attrs{Weekday: h.Weekday(), Hour: h.HourOfDay()}
	if isHoliday != nil {
		a.Holiday = isHoliday(h.Date())
	}
	return a
}

// Contains reports whether h belongs to b, consulting the process-wide NERC
// holiday calendar when the bucket needs it.
func (b Bucket) Contains(h calendar.Hour) bool {
	var isHoliday func(calendar.Date) bool
	if b.UsesHolidays() {
		isHoliday = holiday.IsHoliday
	}
	return b.Matches(AttrsOf(h, isHoliday))
}

// Matches is the bucket predicate over precomputed hour attributes.
func (b Bucket) Matches(a Attrs) bool {
	switch b {
	case Atc:
		return true
	case B5x16:
		return eastPeak(a.Hour) && a.Weekday != time.Saturday && a.Weekday != time.Sunday && !a.Holiday
	case B2x16H:
		return eastPeak(a.Hour) && (a.Weekday == time.Saturday || a.Weekday == time.Sunday || a.Holiday)
	case B7x8:
		return !eastPeak(a.Hour)
	case Offpeak:
		return !B5x16.Matches(a)
	case B7x16:
		return eastPeak(a.Hour)
	case Caiso6x16:
		return caisoPeak(a.Hour) && a.Weekday != time.Sunday && !a.Holiday
	case Caiso1x16H:
		return caisoPeak(a.Hour) && (a.Weekday == time.Sunday || a.Holiday)
	case Caiso7x8:
		return !caisoPeak(a.Hour)
	case CaisoOffpeak:
		return !Caiso6x16.Matches(a)
	}
	return false
}

func eastPeak(hour int) bool  { return inWindow(hour, eastPeakStart, eastPeakEnd) }
func caisoPeak(hour int) bool { return inWindow(hour, caisoPeakStart, caisoPeakEnd) }

// inWindow checks whether hour is in [start, end) on a 24h clock.
// start == end is empty; start > end wraps across midnight.
func inWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
