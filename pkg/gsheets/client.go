package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"timesheet-assistant/pkg/taskparser"
)

const (
	defaultSheetName = "Timesheet"

	// valueInputRaw stores cells verbatim, so a label starting with "=" stays text.
	valueInputRaw    = "RAW"
	insertDataInsert = "INSERT_ROWS"
)

// Client wraps the Google Sheets API service.
type Client struct {
	service *sheets.Service
}

// NewClientFromCredentialsFile creates a Sheets client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Sheets client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Append writes one row per entry below the existing data of the sheet.
func (c *Client) Append(ctx context.Context, req AppendRequest) (*AppendResult, error) {
	if req.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}
	if len(req.Entries) == 0 {
		return &AppendResult{}, nil
	}

	sheetName := req.SheetName
	if sheetName == "" {
		sheetName = defaultSheetName
	}

	values := &sheets.ValueRange{Values: Rows(req.Entries)}
	resp, err := c.service.Spreadsheets.Values.
		Append(req.SpreadsheetID, sheetName+"!A:C", values).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataInsert).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to append rows: %w", err)
	}

	result := &AppendResult{}
	if resp.Updates != nil {
		result.UpdatedRange = resp.Updates.UpdatedRange
		result.UpdatedRows = resp.Updates.UpdatedRows
	}
	return result, nil
}

// Rows converts entries into Date, Task, Hours cells.
func Rows(entries []taskparser.Entry) [][]interface{} {
	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		rows[i] = []interface{}{e.Date, e.Task, e.Hours}
	}
	return rows
}
