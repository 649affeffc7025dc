// Package ingest turns raw spreadsheet rows into transactions.
//
// Rows come from any RowSource (Google Sheets, a CSV export, demo
// fixtures) as positional string fields. The parser is total: a row
// either yields exactly one transaction or is silently dropped, and no
// input ever produces an error.
package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wzkoh/finsight/internal/transaction"
)

// Fixed column layout of the Transactions sheet.
const (
	colDate     = 0
	colBank     = 1
	colCard     = 2
	colMerchant = 3
	colAmount   = 4
	colCategory = 5
	colNotes    = 7
	colCurrency = 9
	colKind     = 10
)

// Parse converts raw rows into transactions. The first row is the
// header and is always skipped. Rows with a missing or unparseable
// date, or with a non-positive or non-numeric amount, are dropped.
func Parse(rows [][]string) []transaction.Transaction {
	if len(rows) < 2 {
		return nil
	}

	var txs []transaction.Transaction

	for _, row := range rows[1:] {
		date, ok := parseDate(cell(row, colDate))
		if !ok {
			continue
		}

		amount, ok := parseAmount(cell(row, colAmount))
		if !ok {
			continue
		}

		merchant := cell(row, colMerchant)
		if merchant == "" {
			merchant = transaction.DefaultMerchant
		}

		category := cell(row, colCategory)
		if category == "" {
			category = transaction.DefaultCategory
		}

		currency := cell(row, colCurrency)
		if currency == "" {
			currency = transaction.HomeCurrency
		}

		txs = append(txs, transaction.Transaction{
			Date:      date,
			Bank:      cell(row, colBank),
			CardLabel: cell(row, colCard),
			Merchant:  merchant,
			Amount:    amount,
			Category:  category,
			Notes:     cell(row, colNotes),
			Currency:  currency,
			Kind:      parseKind(cell(row, colKind), category),
		})
	}

	return txs
}

// dayFirstRe matches D/M/YYYY with -, / or . separators and an optional
// 24-hour H:MM time.
var dayFirstRe = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})(?:\s+(\d{1,2}):(\d{2}))?`)

// fallbackLayouts are tried in order when the day-first form does not
// match, covering the machine formats sheets tend to emit.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// parseDate accepts day-first dates (15/1/2025, 15-01-2025, 15.1.2025,
// optionally followed by 18:30) and falls back to common machine
// formats. Returns false for anything else.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		hour, minute := 0, 0
		if m[4] != "" {
			hour, _ = strconv.Atoi(m[4])
			minute, _ = strconv.Atoi(m[5])
		}

		if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
			return time.Time{}, false
		}

		return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount parses a positive decimal amount. Zero, negative and
// non-numeric values are rejected.
func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, false
	}

	if !d.IsPositive() {
		return 0, false
	}

	return d.InexactFloat64(), true
}

// parseKind uses the explicit kind column when present. Without one,
// only the income-and-refunds category defaults to income; everything
// else is spending.
func parseKind(raw, category string) transaction.Kind {
	if raw != "" {
		return transaction.Kind(raw)
	}

	if category == transaction.IncomeCategory {
		return transaction.KindIncome
	}

	return transaction.KindSpending
}

// cell safely gets a trimmed cell value from a row.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
