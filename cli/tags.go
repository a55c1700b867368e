package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"weekfold/calculator"
)

var tagsCmd = &cobra.Command{
	Use:   "tags <year>",
	Short: "Sum hours per tag for one year",
	Long: `Sum logged hours per tag for a year. A multi-tagged activity counts its
full duration once per tag, so the column does not add up to the year's
total: this view is for spotting where time goes, not for bookkeeping.`,
	Args: cobra.ExactArgs(1),
	RunE: runTags,
}

var tagsInput string

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().StringVarP(&tagsInput, "input", "i", "", "Path to the CSV export")
	_ = tagsCmd.MarkFlagRequired("input")
}

func runTags(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}

	batch, err := parseExport(tagsInput)
	if err != nil {
		return err
	}

	hours := calculator.HoursPerTag(batch.Activities, year)
	if len(hours) == 0 {
		fmt.Printf("No tag data found for year %d.\n", year)
		return nil
	}

	type tagHours struct {
		tag   string
		hours float64
	}
	sorted := make([]tagHours, 0, len(hours))
	for tag, h := range hours {
		sorted = append(sorted, tagHours{tag, h})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].hours != sorted[j].hours {
			return sorted[i].hours > sorted[j].hours
		}
		return sorted[i].tag < sorted[j].tag
	})

	fmt.Printf("\n- Hours per tag, %d -\n", year)
	for _, th := range sorted {
		fmt.Printf(" %-30s %8.1f\n", th.tag, th.hours)
	}

	return nil
}
