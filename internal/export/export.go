// Package export writes transactions back out as CSV, in the same
// column layout the ingest parser reads. A round trip through export
// and ingest preserves every transaction.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/wzkoh/finsight/internal/transaction"
)

var header = []string{"Date", "Bank", "Card", "Merchant", "Amount", "Category", "", "Notes", "", "Currency", "Kind"}

// Write streams txns to w as CSV with a header row.
func Write(w io.Writer, txns []transaction.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txns {
		row := []string{
			tx.Date.Format("02/01/2006 15:04"),
			tx.Bank,
			tx.CardLabel,
			tx.Merchant,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Category,
			"",
			tx.Notes,
			"",
			tx.Currency,
			string(tx.Kind),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", tx.Merchant, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// Filename builds a download name like finsight-mtd-20250615.csv.
func Filename(label string, now time.Time) string {
	return fmt.Sprintf("finsight-%s-%s.csv", label, now.Format("20060102"))
}
