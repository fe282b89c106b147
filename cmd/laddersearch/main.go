// Command laddersearch runs the ladder-search engines against a
// generated grid task from the CLI, the way conduit/cmd/gateway's
// cobra root command wires subcommands over a shared config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "laddersearch",
	Short: "Run ladder-search engines over a grid task",
	Long: `laddersearch runs the Beauty, Synchronic, IteratedSync and
AnytimeBeauty search engines against a generated grid task, tuned by a
TOML config file, and can serve a search-statistics collector as
Prometheus metrics (the standalone serve command reports all-zero counters).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file (engine tuning knobs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
