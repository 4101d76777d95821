package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
)

var (
	termsMonths  bool
	termsBuckets string
)

var termsCmd = &cobra.Command{
	Use:   "terms <term>...",
	Short: "Show how terms resolve",
	Long: `Parses each term and prints its canonical form, bounds and hour count.

Examples:
  gridcal terms "q1 22" Cal23[Europe/Berlin]
  gridcal terms Cal22 --months --bucket 5x16,offpeak`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTerms,
}

func init() {
	rootCmd.AddCommand(termsCmd)

	termsCmd.Flags().BoolVar(&termsMonths, "months", false, "break each term down by month")
	termsCmd.Flags().StringVarP(&termsBuckets, "bucket", "b", "", "buckets for the month breakdown (default from config)")
}

func runTerms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := defaultLocation(cfg)
	if err != nil {
		return err
	}
	var buckets []bucket.Bucket
	if termsMonths {
		list := termsBuckets
		if list == "" {
			list = strings.Join(cfg.Calendar.DefaultBuckets, ",")
		}
		if buckets, err = bucket.ParseList(list); err != nil {
			return err
		}
	}

	var (
		c      analysis.Counter
		failed []string
	)
	for _, a := range args {
		t, err := calendar.ParseTermTz(a, loc)
		if err != nil {
			printError("parse", err)
			failed = append(failed, a)
			continue
		}
		fmt.Printf("%s\n", t)
		fmt.Printf("  canonical: %s\n", t.Term.Canonical())
		fmt.Printf("  dates:     %s .. %s (%d days)\n", t.Term.Start, t.Term.Last(), t.Term.DayCount())
		fmt.Printf("  instants:  %s .. %s\n", t.Start().Format("2006-01-02 15:04 MST"), t.End().Format("2006-01-02 15:04 MST"))
		fmt.Printf("  hours:     %d\n", t.HourCount())
		if !termsMonths {
			continue
		}
		for _, m := range c.BreakdownByMonth(buckets, t) {
			fmt.Printf("  %-16s", m.Term.Term)
			for _, cnt := range m.Counts {
				fmt.Printf(" %s=%d", cnt.Bucket, cnt.Hours)
			}
			fmt.Println()
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d terms could not be parsed: %s", len(failed), len(args), strings.Join(failed, ", "))
	}
	return nil
}
