package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"weekfold/calculator"
	"weekfold/client/terminal"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [year...]",
	Short: "Classify the days of a year",
	Long: `Label every day of a year as a normal day, a workday holiday (a weekday
below the daily threshold), or a worked weekend (a Saturday or Sunday at or
above it). Without year arguments, every year present in the export is
classified.

Days after today in the current year are left unclassified.

Examples:
  weekfold calendar -i data/tmetric.csv
  weekfold calendar -i data/tmetric.csv 2024
  weekfold calendar -i data/tmetric.csv --threshold 4 --raw`,
	RunE: runCalendar,
}

// Flags
var (
	calendarInput     string
	calendarThreshold float64
	calendarRaw       bool
)

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringVarP(&calendarInput, "input", "i", "", "Path to the CSV export")
	calendarCmd.Flags().Float64VarP(&calendarThreshold, "threshold", "t", -1, "Daily threshold in hours (default from config)")
	calendarCmd.Flags().BoolVar(&calendarRaw, "raw", false, "Classify raw day totals instead of adjusted ones")
	_ = calendarCmd.MarkFlagRequired("input")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	threshold := conf.Threshold()
	if cmd.Flags().Changed("threshold") {
		if calendarThreshold < 0 {
			return fmt.Errorf("--threshold must be >= 0, got %v", calendarThreshold)
		}
		threshold = calendarThreshold
	}

	batch, err := parseExport(calendarInput)
	if err != nil {
		return err
	}

	calc := &calculator.Calculator{Conf: conf}
	report, _ := calc.Run(batch)

	years := calculator.Years(batch.Activities)
	if len(args) > 0 {
		years = years[:0]
		for _, arg := range args {
			year, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid year %q", arg)
			}
			years = append(years, year)
		}
	}

	// the calendar follows the adjusted view unless asked otherwise
	dayHours := calculator.HoursPerDay(batch.Activities, !calendarRaw)

	term := &terminal.Client{}
	if err := term.Init(); err != nil {
		return fmt.Errorf("terminal.Client.Init: %w", err)
	}

	for _, year := range years {
		records := calculator.ClassifyYear(dayHours, year, threshold, time.Now())
		count := calculator.CountYear(year, records)
		if err := term.OutputYear(records, count); err != nil {
			return fmt.Errorf("OutputYear: %w", err)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Printf("\n(%d data-quality warnings; run `weekfold process` for details)\n", len(report.Warnings))
	}

	return nil
}
