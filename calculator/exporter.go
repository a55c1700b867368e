package calculator

import (
	"context"
	"fmt"
	"strings"

	"weekfold/client/sheets"
	"weekfold/client/terminal"
	"weekfold/config"
	"weekfold/exporter"
	"weekfold/format"
)

func LoadExporter(conf *config.ExporterConfig) (exporter.Exporter, error) {
	switch strings.ToLower(conf.Name) {
	case "csv":
		return CSVExporter(conf.Params)
	case "xlsx":
		return XLSXExporter(conf.Params)
	case "sheets":
		return SheetsExporter(conf.Params)
	default:
		return nil, fmt.Errorf("unrecognized exporter: %s", conf.Name)
	}
}

func getParams(params map[string]string, required ...string) (map[string]string, error) {
	result := make(map[string]string)
	for _, key := range required {
		value, ok := params[key]
		if !ok {
			return nil, fmt.Errorf("missing parameter: %s", key)
		}
		result[key] = value
	}

	return result, nil
}

func CSVExporter(params map[string]string) (*exporter.CSVFile, error) {
	p, err := getParams(params, "path")
	if err != nil {
		return nil, fmt.Errorf("getParams: %w", err)
	}

	return &exporter.CSVFile{Path: p["path"]}, nil
}

func XLSXExporter(params map[string]string) (*exporter.XLSXFile, error) {
	p, err := getParams(params, "path")
	if err != nil {
		return nil, fmt.Errorf("getParams: %w", err)
	}

	return &exporter.XLSXFile{
		Path:  p["path"],
		Sheet: params["sheet"],
	}, nil
}

func SheetsExporter(params map[string]string) (*sheets.Client, error) {
	p, err := getParams(params, "spreadsheetId")
	if err != nil {
		return nil, fmt.Errorf("getParams: %w", err)
	}

	client := &sheets.Client{
		SpreadsheetID:   p["spreadsheetId"],
		SheetName:       params["sheet"],
		CredentialsPath: params["credentials"],
	}

	err = client.Init(context.Background())
	if err != nil {
		return nil, fmt.Errorf("sheets.Client.Init: %w", err)
	}

	return client, nil
}

func (c *Calculator) LoadSummaryOutput() error {
	// Currently only terminal output is supported
	return c.LoadTerminalOutput()
}

func (c *Calculator) LoadTerminalOutput() error {
	defaultTimeFormat := format.TimeClock
	if c.Conf.Output != nil && c.Conf.Output.Params != nil {
		tf, ok := c.Conf.Output.Params["timeFormat"]
		if ok {
			defaultTimeFormat = tf
		}
	}

	termClient := &terminal.Client{
		TimeFormat: defaultTimeFormat,
	}
	err := termClient.Init()
	if err != nil {
		return fmt.Errorf("terminal.Client.Init: %w", err)
	}

	c.SummaryOutput = termClient
	return nil
}
