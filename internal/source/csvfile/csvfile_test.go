package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzkoh/finsight/internal/source/csvfile"
)

func writeCSV(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestFetch(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, []byte("Date,Bank,Card,Merchant,Amount\n15/01/2025,DBS,3115,NTUC FairPrice,84.20\n16/01/2025,UOB,0076,Grab,18.50,Transport,,tagged\n"))

	src, err := csvfile.New(path)
	require.NoError(t, err)

	rows, err := src.Fetch(context.Background())
	require.NoError(t, err)

	// Ragged rows survive; the parser deals with column counts.
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"15/01/2025", "DBS", "3115", "NTUC FairPrice", "84.20"}, rows[1])
	assert.Len(t, rows[2], 8)
}

func TestFetchUTF8BOM(t *testing.T) {
	t.Parallel()

	content := append([]byte{0xEF, 0xBB, 0xBF}, "Date,Bank\n15/01/2025,DBS\n"...)
	path := writeCSV(t, content)

	src, err := csvfile.New(path)
	require.NoError(t, err)

	rows, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Date", rows[0][0])
}

func TestFetchMissingFile(t *testing.T) {
	t.Parallel()

	src, err := csvfile.New(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestNewEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := csvfile.New("  ")
	assert.Error(t, err)
}

func TestFetchCancelledContext(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, []byte("Date,Bank\n"))

	src, err := csvfile.New(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
