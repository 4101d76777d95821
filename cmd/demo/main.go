package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
	"github.com/thumbert/bust-sub001/internal/holiday"
)

// Demo:
// - Parse a term (default: the July 4th week of 2022)
// - Print one row per day with the bucket of every hour
// - Show where holidays and DST change the picture
func main() {
	termStr := flag.String("term", "2Jul22-10Jul22[America/New_York]", "Term to draw")
	tz := flag.String("tz", "America/New_York", "Zone for terms without one")
	region := flag.String("region", "nerc", "Bucket family: nerc or caiso")
	flag.Parse()

	loc, err := calendar.LoadLocation(*tz)
	if err != nil {
		log.Fatal(err)
	}
	term, err := calendar.ParseTermTz(*termStr, loc)
	if err != nil {
		log.Fatal(err)
	}

	// peak, holiday/weekend peak, off-peak night
	legend := []bucket.Bucket{bucket.B5x16, bucket.B2x16H, bucket.B7x8}
	if strings.EqualFold(*region, "caiso") {
		legend = []bucket.Bucket{bucket.Caiso6x16, bucket.Caiso1x16H, bucket.Caiso7x8}
	}
	marks := []byte{'P', 'H', '.'}

	fmt.Printf("%s  %s=%c %s=%c %s=%c\n\n", term, legend[0], marks[0], legend[1], marks[1], legend[2], marks[2])
	fmt.Printf("%-10s %-3s  %s\n", "date", "", "000000000011111111112222")
	fmt.Printf("%-10s %-3s  %s\n", "", "", "012345678901234567890123")

	var (
		day    calendar.Date
		row    strings.Builder
		counts = make([]int, len(legend))
	)
	flush := func() {
		if row.Len() == 0 {
			return
		}
		note := ""
		if name, ok := holiday.Default().Name(day); ok {
			note = "  " + name
		}
		fmt.Printf("%s %-3s  %s%s\n", day, day.Weekday().String()[:3], row.String(), note)
		row.Reset()
	}
	for h := range term.Hours() {
		if d := h.Date(); d != day {
			flush()
			day = d
		}
		for i, b := range legend {
			if b.Contains(h) {
				row.WriteByte(marks[i])
				counts[i]++
				break
			}
		}
	}
	flush()

	fmt.Println()
	for i, b := range legend {
		fmt.Printf("%-12s %5d hours\n", b, counts[i])
	}
	fmt.Printf("%-12s %5d hours\n", bucket.Atc, term.HourCount())
}
