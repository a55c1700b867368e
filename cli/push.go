package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weekfold/calculator"
	"weekfold/client/sheets"
	"weekfold/console"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the processed table to Google Sheets",
	Long: `Process the export and replace a Google Sheets worksheet with the
augmented table. Credentials come from --credentials, a local
credentials.json, or application default credentials.

Examples:
  weekfold push -i data/tmetric.csv --spreadsheet 1AbC...
  weekfold push -i data/tmetric.csv --spreadsheet 1AbC... --sheet Processed`,
	RunE: runPush,
}

// Flags
var (
	pushInput       string
	pushSpreadsheet string
	pushSheet       string
	pushCredentials string
	pushYes         bool
)

func init() {
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().StringVarP(&pushInput, "input", "i", "", "Path to the CSV export")
	pushCmd.Flags().StringVar(&pushSpreadsheet, "spreadsheet", "", "Target spreadsheet ID (default: $WEEKFOLD_SPREADSHEET_ID)")
	pushCmd.Flags().StringVar(&pushSheet, "sheet", "", "Worksheet name (default Sheet1)")
	pushCmd.Flags().StringVar(&pushCredentials, "credentials", "", "Path to a Google credentials JSON file")
	pushCmd.Flags().BoolVarP(&pushYes, "yes", "y", false, "Push without asking for confirmation")
	_ = pushCmd.MarkFlagRequired("input")
}

func runPush(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	spreadsheetID := pushSpreadsheet
	if spreadsheetID == "" {
		spreadsheetID = os.Getenv("WEEKFOLD_SPREADSHEET_ID")
	}
	if spreadsheetID == "" {
		return fmt.Errorf("no spreadsheet ID: pass --spreadsheet or set WEEKFOLD_SPREADSHEET_ID")
	}

	batch, err := parseExport(pushInput)
	if err != nil {
		return err
	}

	calc := &calculator.Calculator{Conf: conf}
	if err := calc.LoadSummaryOutput(); err != nil {
		return fmt.Errorf("LoadSummaryOutput: %w", err)
	}

	report, table := calc.Run(batch)
	if err := calc.SummaryOutput.OutputReport(report); err != nil {
		return fmt.Errorf("OutputReport: %w", err)
	}

	client := &sheets.Client{
		SpreadsheetID:   spreadsheetID,
		SheetName:       pushSheet,
		CredentialsPath: pushCredentials,
	}
	if err := client.Init(context.Background()); err != nil {
		return fmt.Errorf("sheets.Client.Init: %w", err)
	}

	prompt := fmt.Sprintf("Replace worksheet %q in spreadsheet %s with %d rows?",
		client.SheetName, spreadsheetID, len(table.Rows))
	if !pushYes && !console.Confirm(prompt) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.Export(table); err != nil {
		return fmt.Errorf("sheets.Client.Export: %w", err)
	}

	fmt.Println("Pushed.")
	return nil
}
