package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thumbert/bust-sub001/internal/bucket"
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List the supported buckets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-14s %-6s %-22s %s\n", "bucket", "region", "aliases", "description")
		for _, b := range bucket.All() {
			fmt.Printf("%-14s %-6s %-22s %s\n", b, b.Region(), strings.Join(b.Aliases(), ","), b.Description())
		}
	},
}

func init() {
	rootCmd.AddCommand(bucketsCmd)
}
