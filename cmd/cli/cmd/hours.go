package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
	"github.com/thumbert/bust-sub001/internal/report"
)

var (
	hoursBucket string
	hoursOut    string
)

var hoursCmd = &cobra.Command{
	Use:   "hours <term>",
	Short: "List the hours of a term that fall in a bucket, as CSV",
	Long: `Writes one CSV row per hour of the term that belongs to the bucket.

Examples:
  gridcal hours 6Nov22 --bucket 7x8
  gridcal hours "Jul22[America/Los_Angeles]" -b caiso_1x16H --out jul.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runHours,
}

func init() {
	rootCmd.AddCommand(hoursCmd)

	hoursCmd.Flags().StringVarP(&hoursBucket, "bucket", "b", "atc", "bucket")
	hoursCmd.Flags().StringVarP(&hoursOut, "out", "o", "", "output file (default stdout)")
}

func runHours(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := defaultLocation(cfg)
	if err != nil {
		return err
	}
	b, err := bucket.Parse(hoursBucket)
	if err != nil {
		return err
	}
	term, err := calendar.ParseTermTz(args[0], loc)
	if err != nil {
		return err
	}

	var c analysis.Counter
	hours := c.FilterHours(b, term)

	if hoursOut == "" {
		return report.WriteHours(os.Stdout, b, hours)
	}
	if err := report.WriteHoursFile(hoursOut, b, hours); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(hours), hoursOut)
	return nil
}
