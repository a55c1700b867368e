// Package calculator is the core pipeline: group activities into Monday
// weeks, redistribute overhead time, classify days, and assemble the
// augmented output table. Everything downstream of the parser and upstream
// of the renderers lives here.
package calculator

import (
	"fmt"

	"weekfold/activity"
	"weekfold/config"
	"weekfold/exporter"
	"weekfold/summary"
)

type Calculator struct {
	Conf          *config.Config
	Exporter      exporter.Exporter
	SummaryOutput summary.Output
}

func (c *Calculator) Start() error {
	// Initialize the exporter, if one has been configured
	if c.Conf.Exporter != nil {
		exp, err := LoadExporter(c.Conf.Exporter)
		if err != nil {
			return fmt.Errorf("loading exporter: %w", err)
		}
		c.Exporter = exp
	}

	err := c.LoadSummaryOutput()
	if err != nil {
		return fmt.Errorf("LoadSummaryOutput: %w", err)
	}

	return nil
}

// Run executes the batch pipeline: group, redistribute, build the table.
// It is a pure function of the batch and the configuration; the batch's
// Adjusted fields are the only thing written.
func (c *Calculator) Run(batch *activity.Batch) (*summary.Report, *exporter.Table) {
	report := &summary.Report{
		Activities:  len(batch.Activities),
		DroppedRows: batch.Dropped,
		Warnings:    append([]string(nil), batch.Warnings...),
	}

	weeks := GroupByWeek(batch.Activities)
	report.Weeks = Redistribute(weeks, c.Conf.OverheadCategory, report)

	return report, BuildTable(batch, report.Weeks)
}

// Receive lets a file-watching subscriber feed the calculator: every new
// batch is processed, summarized, and exported.
func (c *Calculator) Receive(batch *activity.Batch) error {
	report, table := c.Run(batch)

	err := c.SummaryOutput.OutputReport(report)
	if err != nil {
		return fmt.Errorf("SummaryOutput.OutputReport: %w", err)
	}

	if c.Exporter != nil {
		err = c.Exporter.Export(table)
		if err != nil {
			return fmt.Errorf("Exporter.Export: %w", err)
		}
	}

	return nil
}
