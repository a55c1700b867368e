// Package sheets pushes a processed table to a Google Sheets worksheet, so
// chart-building spreadsheet consumers can pick it up without a manual
// import step.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"weekfold/exporter"
)

const localCredentialPath = "credentials.json"

type Client struct {
	SpreadsheetID   string
	SheetName       string // defaults to "Sheet1"
	CredentialsPath string // defaults to credentials.json, then ADC

	svc *gsheet.Service
}

func (c *Client) Init(ctx context.Context) error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("missing spreadsheet ID")
	}
	if c.SheetName == "" {
		c.SheetName = "Sheet1"
	}

	ts, err := tokenSource(ctx, c.CredentialsPath)
	if err != nil {
		return fmt.Errorf("tokenSource: %w", err)
	}

	svc, err := gsheet.NewService(ctx, goption.WithTokenSource(ts))
	if err != nil {
		return fmt.Errorf("sheets.NewService: %w", err)
	}
	c.svc = svc
	return nil
}

// Export replaces the worksheet's contents with the table.
func (c *Client) Export(table *exporter.Table) error {
	ctx := context.Background()

	values := make([][]any, 0, len(table.Rows)+1)
	values = append(values, toAnyRow(table.Header))
	for _, row := range table.Rows {
		values = append(values, toAnyRow(row))
	}

	_, err := c.svc.Spreadsheets.Values.
		Clear(c.SpreadsheetID, c.SheetName, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clearing sheet %q: %w", c.SheetName, err)
	}

	_, err = c.svc.Spreadsheets.Values.
		Update(c.SpreadsheetID, c.SheetName+"!A1", &gsheet.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("updating sheet %q: %w", c.SheetName, err)
	}

	return nil
}

// tokenSource tries a local credential file first, then falls back to
// application default credentials.
func tokenSource(ctx context.Context, credentialPath string) (oauth2.TokenSource, error) {
	if credentialPath == "" {
		credentialPath = localCredentialPath
	}

	b, readErr := os.ReadFile(credentialPath)

	if readErr != nil && !errors.Is(readErr, os.ErrNotExist) {
		// file was found, but could not be read
		return nil, fmt.Errorf("failed to open credential file: %w", readErr)
	}

	if readErr == nil { // file found
		creds, err := google.CredentialsFromJSON(ctx, b, gsheet.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse local credential file: %w", err)
		}
		return creds.TokenSource, nil
	}

	// local file not found: try default credentials
	creds, err := google.FindDefaultCredentials(ctx, gsheet.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("no credentials are available: %w", err)
	}

	return creds.TokenSource, nil
}

func toAnyRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
