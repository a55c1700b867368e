package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"weekfold/activity"
	"weekfold/calculator"
	"weekfold/client/tmetric"
	"weekfold/config"
	"weekfold/console"
	"weekfold/exporter"
	"weekfold/format"
	"weekfold/parameter"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Redistribute overhead time and write the augmented table",
	Long: `Parse a time-tracking export, fold each week's overhead time into the
other activities of that week, and write the augmented table.

Examples:
  weekfold process -i data/tmetric.csv
  weekfold process -i data/tmetric.csv -o out.csv --xlsx out.xlsx
  weekfold process -i data/tmetric.csv --time-format hm`,
	RunE: runProcess,
}

// Flags
var (
	processInput   string
	processOutput  string
	processXLSX    string
	processTimeFmt string
)

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processInput, "input", "i", "", "Path to the CSV export")
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "Output CSV path (default: <input>_processed.csv)")
	processCmd.Flags().StringVar(&processXLSX, "xlsx", "", "Also write an XLSX workbook to this path")
	processCmd.Flags().StringVar(&processTimeFmt, "time-format", "", "Duration display format: clock, hm, m")
	_ = processCmd.MarkFlagRequired("input")
}

func runProcess(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	if err := applyTimeFormat(conf, processTimeFmt); err != nil {
		return err
	}

	batch, err := parseExport(processInput)
	if err != nil {
		return err
	}

	calc := &calculator.Calculator{Conf: conf}
	if err := calc.Start(); err != nil {
		return fmt.Errorf("calculator.Start: %w", err)
	}

	report, table := calc.Run(batch)

	if err := calc.SummaryOutput.OutputReport(report); err != nil {
		return fmt.Errorf("OutputReport: %w", err)
	}

	out := processOutput
	if out == "" {
		out = strings.TrimSuffix(processInput, ".csv") + "_processed.csv"
	}

	csvOut := &exporter.CSVFile{Path: out}
	if err := csvOut.Export(table); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)

	if processXLSX != "" {
		xlsxOut := &exporter.XLSXFile{Path: processXLSX}
		if err := xlsxOut.Export(table); err != nil {
			return fmt.Errorf("writing %s: %w", processXLSX, err)
		}
		fmt.Printf("Wrote %s\n", processXLSX)
	}

	if calc.Exporter != nil {
		if console.Confirm("Export the processed table via the configured exporter?") {
			if err := calc.Exporter.Export(table); err != nil {
				return fmt.Errorf("Exporter.Export: %w", err)
			}
		}
	}

	return nil
}

// parseExport parses an export file, turning the no-usable-rows sentinel
// into a caller-friendly message.
func parseExport(path string) (*activity.Batch, error) {
	parser := tmetric.Parser{}
	batch, err := parser.ParseFile(path)
	if err != nil {
		if errors.Is(err, tmetric.ErrNoActivities) && batch != nil {
			return nil, fmt.Errorf("%s: %w (%d rows dropped)", path, err, batch.Dropped)
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return batch, nil
}

func applyTimeFormat(conf *config.Config, flag string) error {
	if flag == "" {
		return nil
	}

	tf, err := parameter.Validate(flag, []string{format.TimeClock, format.TimeHM, format.TimeM})
	if err != nil {
		return fmt.Errorf("validating --time-format: %w", err)
	}

	if conf.Output == nil {
		conf.Output = &config.OutputConfig{}
	}
	if conf.Output.Params == nil {
		conf.Output.Params = map[string]string{}
	}
	conf.Output.Params["timeFormat"] = tf
	return nil
}
