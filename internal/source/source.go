// Package source owns the transaction list. A RowSource fetches raw
// spreadsheet rows from wherever they live; the Service parses them
// once per refresh and hands immutable snapshots to the analytics and
// presentation layers.
package source

import (
	"context"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=source

// RowSource yields the raw rows of the Transactions sheet, header row
// included. Implementations own transport concerns (retries, auth);
// the caller never sees partial data.
type RowSource interface {
	Fetch(ctx context.Context) ([][]string, error)
}

// Name identifies a RowSource implementation for logging and config.
type Name string

const (
	NameSheets Name = "sheets"
	NameCSV    Name = "csv"
	NameDemo   Name = "demo"
)
