package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekfold/calculator"
	"weekfold/client/tmetric"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprocess the export whenever it changes",
	Long: `Watch the export file and rerun the pipeline on every write. Useful when
the tracking tool re-exports on a schedule.`,
	RunE: runWatch,
}

var watchInput string

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "Path to the CSV export to watch")
	_ = watchCmd.MarkFlagRequired("input")
}

func runWatch(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	subscriber, err := tmetric.NewSubscriber(watchInput)
	if err != nil {
		return fmt.Errorf("tmetric.NewSubscriber: %w", err)
	}

	calc := &calculator.Calculator{Conf: conf}
	if err := calc.Start(); err != nil {
		return fmt.Errorf("calculator.Start: %w", err)
	}

	fmt.Printf("Watching %s\n", watchInput)
	return subscriber.Subscribe(calc)
}
