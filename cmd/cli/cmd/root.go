package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thumbert/bust-sub001/internal/calendar"
	"github.com/thumbert/bust-sub001/internal/config"
)

var (
	cfgFile string
	tzFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "gridcal",
	Short: "Trading calendar buckets: hour counts, holidays and terms",
	Long: `gridcal turns a term and a time zone into the set of hours that fall in a
power trading bucket, accounting for weekends, NERC holidays and DST.

Terms:
  Cal22, Q1,22, Jan22, Jan22-Mar22, 5Jan22, 1Jan22-15Jan22,
  2022-01-01/2022-03-31, optionally followed by a zone: Cal22[America/New_York]

Buckets:
  atc, 5x16, 2x16H, 7x8, offpeak, 7x16,
  caiso_6x16, caiso_1x16H, caiso_7x8, caiso_offpeak`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "zone for terms without one (default from config)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// defaultLocation is the zone applied to terms written without one.
func defaultLocation(cfg *config.Config) (*time.Location, error) {
	if tzFlag != "" {
		return calendar.LoadLocation(tzFlag)
	}
	return cfg.DefaultLocation()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
