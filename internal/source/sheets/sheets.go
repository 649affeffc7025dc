// Package sheets fetches transaction rows from a Google Sheets
// spreadsheet using an API key, which is enough for sheets shared as
// viewable-by-link.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// DefaultRange is the sheet tab holding transaction rows.
const DefaultRange = "Transactions"

const (
	maxRetries      = 3
	initialInterval = 500 * time.Millisecond
)

// Client reads rows from one spreadsheet.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	readRange     string
}

// New builds a sheets client for the given spreadsheet. readRange may
// be empty, in which case DefaultRange is read.
func New(ctx context.Context, spreadsheetID, apiKey, readRange string) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}

	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing API key")
	}

	svc, err := gsheet.NewService(ctx, goption.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	if readRange == "" {
		readRange = DefaultRange
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// Fetch reads the whole transactions range, retrying transient failures
// with exponential backoff before giving up.
func (c *Client) Fetch(ctx context.Context) ([][]string, error) {
	var resp *gsheet.ValueRange

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval

	err := backoff.Retry(func() error {
		var err error

		resp, err = c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()

		return err
	}, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.readRange, err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in %s sheet", c.readRange)
	}

	return rowStrings(resp.Values), nil
}

// rowStrings flattens the API's loosely typed cells into trimmed
// strings, the shape the parser expects.
func rowStrings(values [][]any) [][]string {
	rows := make([][]string, len(values))

	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strings.TrimSpace(fmt.Sprint(v))
		}

		rows[i] = cells
	}

	return rows
}
