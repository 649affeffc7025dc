package ingest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzkoh/finsight/internal/ingest"
	"github.com/wzkoh/finsight/internal/transaction"
)

var header = []string{"Date", "Bank", "Card", "Merchant", "Amount", "Category", "", "Notes", "", "Currency", "Type"}

func TestParse_FullRow(t *testing.T) {
	rows := [][]string{
		header,
		{"15/1/2025 18:30", "DBS", "3115", "Din Tai Fung", "45.80", "Dining", "", "dinner", "", "SGD", ""},
	}

	txs := ingest.Parse(rows)
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Equal(t, time.Date(2025, time.January, 15, 18, 30, 0, 0, time.Local), tx.Date)
	assert.Equal(t, "DBS", tx.Bank)
	assert.Equal(t, "3115", tx.CardLabel)
	assert.Equal(t, "Din Tai Fung", tx.Merchant)
	assert.InDelta(t, 45.80, tx.Amount, 1e-9)
	assert.Equal(t, "Dining", tx.Category)
	assert.Equal(t, "dinner", tx.Notes)
	assert.Equal(t, "SGD", tx.Currency)
	assert.Equal(t, transaction.KindSpending, tx.Kind)
}

func TestParse_DateForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"slash", "5/3/2025", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)},
		{"dash", "05-03-2025", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)},
		{"dot", "5.3.2025", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)},
		{"with time", "5/3/2025 9:05", time.Date(2025, time.March, 5, 9, 5, 0, 0, time.Local)},
		{"iso fallback", "2025-03-05", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := ingest.Parse([][]string{header, {tt.raw, "", "", "m", "10", "", "", "", "", "", ""}})
			require.Len(t, txs, 1)
			assert.True(t, tt.want.Equal(txs[0].Date), "got %v, want %v", txs[0].Date, tt.want)
		})
	}
}

func TestParse_DropsBadRows(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"missing date", []string{"", "DBS", "", "m", "10", "", "", "", "", "", ""}},
		{"garbage date", []string{"not a date", "DBS", "", "m", "10", "", "", "", "", "", ""}},
		{"zero amount", []string{"1/1/2025", "DBS", "", "m", "0", "", "", "", "", "", ""}},
		{"negative amount", []string{"1/1/2025", "DBS", "", "m", "-5.00", "", "", "", "", "", ""}},
		{"non-numeric amount", []string{"1/1/2025", "DBS", "", "m", "ten", "", "", "", "", "", ""}},
		{"empty amount", []string{"1/1/2025", "DBS", "", "m", "", "", "", "", "", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ingest.Parse([][]string{header, tt.row}))
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	// Short row: only date and amount survive, everything else defaults.
	txs := ingest.Parse([][]string{header, {"2/2/2025", "", "", "", "12.50"}})
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Equal(t, transaction.DefaultMerchant, tx.Merchant)
	assert.Equal(t, transaction.DefaultCategory, tx.Category)
	assert.Equal(t, transaction.HomeCurrency, tx.Currency)
	assert.Empty(t, tx.Bank)
	assert.Empty(t, tx.Notes)
	assert.Equal(t, transaction.KindSpending, tx.Kind)
}

func TestParse_KindInference(t *testing.T) {
	tests := []struct {
		name     string
		category string
		kindCol  string
		want     transaction.Kind
	}{
		{"explicit income", "Dining", "income", transaction.KindIncome},
		{"explicit spending wins over category", transaction.IncomeCategory, "spending", transaction.KindSpending},
		{"income category defaults to income", transaction.IncomeCategory, "", transaction.KindIncome},
		{"other category defaults to spending", "Groceries", "", transaction.KindSpending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := []string{"1/1/2025", "", "", "m", "10", tt.category, "", "", "", "", tt.kindCol}
			txs := ingest.Parse([][]string{header, row})
			require.Len(t, txs, 1)
			assert.Equal(t, tt.want, txs[0].Kind)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, ingest.Parse(nil))
	assert.Empty(t, ingest.Parse([][]string{}))
	assert.Empty(t, ingest.Parse([][]string{header}))
}

func TestParse_InvariantPositiveAmounts(t *testing.T) {
	rows := [][]string{
		header,
		{"1/1/2025", "DBS", "", "a", "10.00", "Dining"},
		{"2/1/2025", "UOB", "", "b", "-3.00", "Dining"},
		{"3/1/2025", "OCBC", "", "c", "0.005", "Dining"},
		{"bad", "OCBC", "", "d", "5.00", "Dining"},
	}

	txs := ingest.Parse(rows)
	require.Len(t, txs, 2)

	for _, tx := range txs {
		assert.Greater(t, tx.Amount, 0.0)
		assert.False(t, tx.Date.IsZero())
	}
}
