package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"weekfold/config"
)

var rootCmd = &cobra.Command{
	Use:   "weekfold",
	Short: "Week-normalized statistics for time-tracking exports",
	Long: `weekfold digests a tmetric-style CSV time-tracking export.

It redistributes a designated overhead category (email, by default)
proportionally onto the other activities of the same week, classifies every
day of a year as a normal day, a workday holiday, or a worked weekend, and
writes an augmented table for spreadsheet and chart consumers.`,
}

var confPath string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// .env may carry credential paths for the sheets exporter
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&confPath, "config", "", "Path to config file")
}

func loadConfig() (*config.Config, error) {
	conf, err := config.Load(confPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return conf, nil
}
