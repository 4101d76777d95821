package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/report"
	"github.com/thumbert/bust-sub001/internal/store/sqlite"
)

var (
	countBuckets string
	countTerms   []string
	countCSV     string
	countDB      string
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the hours of each bucket in each term",
	Long: `Counts hours for every bucket x term combination, bucket-major.

Examples:
  gridcal count --bucket 5x16,2x16H,7x8 --term Cal22
  gridcal count --bucket caiso_6x16 --term "Q3,23[America/Los_Angeles]"
  gridcal count --bucket atc --term Mar22,Nov22 --csv counts.csv --db runs.db`,
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)

	countCmd.Flags().StringVarP(&countBuckets, "bucket", "b", "", "comma-separated buckets (default from config)")
	countCmd.Flags().StringArrayVarP(&countTerms, "term", "t", nil, "terms, comma-separated or repeated")
	countCmd.Flags().StringVar(&countCSV, "csv", "", "also write the counts to this CSV file")
	countCmd.Flags().StringVar(&countDB, "db", "", "store the run in this SQLite database (default from config)")
	_ = countCmd.MarkFlagRequired("term")
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := defaultLocation(cfg)
	if err != nil {
		return err
	}
	buckets := countBuckets
	if buckets == "" {
		buckets = strings.Join(cfg.Calendar.DefaultBuckets, ",")
	}
	pairs, err := analysis.ParsePairs(buckets, strings.Join(countTerms, ","), loc)
	if err != nil {
		return err
	}

	counts := analysis.CountHours(pairs)
	fmt.Printf("%-14s %-28s %-22s %8s\n", "bucket", "term", "zone", "hours")
	for _, c := range counts {
		fmt.Printf("%-14s %-28s %-22s %8d\n", c.Bucket, c.Term.Term, c.Term.Loc, c.Hours)
	}

	if countCSV != "" {
		if err := report.WriteCountsFile(countCSV, counts); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(counts), countCSV)
	}

	dbPath := countDB
	if dbPath == "" {
		dbPath = cfg.Store.DBPath
	}
	if dbPath == "" {
		return nil
	}
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := sqlite.Migrate(db); err != nil {
		return err
	}
	run := sqlite.NewRun("cli", counts, time.Now())
	if err := sqlite.SaveRun(db, run); err != nil {
		return fmt.Errorf("store run: %w", err)
	}
	log.Printf("[Count] stored run %s in %s", run.ID, dbPath)
	return nil
}
