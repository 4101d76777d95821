package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/thumbert/bust-sub001/internal/holiday"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays [year...]",
	Short: "List observed NERC holidays",
	Long: `Lists the NERC holidays observed in each year (default: this year).
Shifted fixed-date holidays show the actual date they were moved from.`,
	RunE: runHolidays,
}

func init() {
	rootCmd.AddCommand(holidaysCmd)
}

func runHolidays(cmd *cobra.Command, args []string) error {
	years := []int{time.Now().Year()}
	if len(args) > 0 {
		years = years[:0]
		for _, a := range args {
			y, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("invalid year %q", a)
			}
			years = append(years, y)
		}
	}

	for _, y := range years {
		fmt.Printf("%d\n", y)
		for _, h := range holiday.Observed(y) {
			note := ""
			if h.Shifted {
				note = "(from " + h.Actual.String() + ")"
			}
			fmt.Printf("  %s  %-9s  %-20s %s\n", h.Date, h.Date.Weekday(), h.Name, note)
		}
	}
	return nil
}
