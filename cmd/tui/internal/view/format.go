package view

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const fetchTimeout = 30 * time.Second

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a dollar amount with thousands separators.
func FormatMoney(v float64) string {
	return moneyPrinter.Sprintf("$%.2f", v)
}

// FormatK abbreviates large amounts for chart axis labels.
func FormatK(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("%.1fk", v/1000)
	}

	return fmt.Sprintf("%.0f", v)
}

// FormatDate formats a time.Time into "02 Jan 2006".
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// FetchCtx returns a context with a standard timeout for source fetches.
func FetchCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fetchTimeout)
}
