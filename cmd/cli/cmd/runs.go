package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thumbert/bust-sub001/internal/store/sqlite"
)

var (
	runsDB    string
	runsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "List stored count runs, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVar(&runsDB, "db", "", "SQLite database (default from config)")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "number of runs to list")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := runsDB
	if path == "" {
		path = cfg.Store.DBPath
	}
	if path == "" {
		return errors.New("no database: pass --db or set store.db_path")
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := sqlite.Migrate(db); err != nil {
		return err
	}

	if len(args) == 0 {
		runs, err := sqlite.ListRuns(db, runsLimit)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  %-4s %d items\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Source, r.Items)
		}
		return nil
	}

	run, err := sqlite.LoadRun(db, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("run %s (%s, %s)\n", run.ID, run.Source, run.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, it := range run.Items {
		fmt.Printf("  %-14s %-28s %-22s %8d\n", it.Bucket, it.Term, it.Zone, it.Hours)
	}
	return nil
}
