// Package analytics derives statistics, trends and leakage findings
// from a parsed transaction set. Every function here is pure: output
// depends only on its arguments, including an explicit "now" for the
// time-window computations, so results are reproducible in tests.
package analytics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wzkoh/finsight/internal/transaction"
)

// PeriodKind selects how a Period constrains the transaction set.
type PeriodKind int

const (
	PeriodMTD PeriodKind = iota
	PeriodYTD
	PeriodMonth
	PeriodAll
)

// Period is a time-window selector evaluated against "now" at filter
// time. PeriodMonth restricts to the given month of the current year.
type Period struct {
	Kind  PeriodKind
	Month time.Month
}

func (p Period) String() string {
	switch p.Kind {
	case PeriodMTD:
		return "mtd"
	case PeriodYTD:
		return "ytd"
	case PeriodMonth:
		return strconv.Itoa(int(p.Month))
	case PeriodAll:
		return "all"
	}

	return "unknown"
}

// Label is the human-readable form used by the presentation layers.
func (p Period) Label() string {
	switch p.Kind {
	case PeriodMTD:
		return "Month to Date"
	case PeriodYTD:
		return "Year to Date"
	case PeriodMonth:
		return p.Month.String()
	case PeriodAll:
		return "All Time"
	}

	return "Unknown"
}

// ParsePeriod reads the query form of a period: "mtd", "ytd", "all",
// or a month number "1".."12".
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "", "mtd":
		return Period{Kind: PeriodMTD}, nil
	case "ytd":
		return Period{Kind: PeriodYTD}, nil
	case "all":
		return Period{Kind: PeriodAll}, nil
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
		return Period{Kind: PeriodMonth, Month: time.Month(n)}, nil
	}

	return Period{}, fmt.Errorf("invalid period %q", s)
}

// Filter returns the subset of txns that fall inside the period,
// evaluated against now. It never mutates its input.
func Filter(txns []transaction.Transaction, p Period, now time.Time) []transaction.Transaction {
	if p.Kind == PeriodAll {
		return txns
	}

	var out []transaction.Transaction

	for _, tx := range txns {
		if tx.Date.Year() != now.Year() {
			continue
		}

		switch p.Kind {
		case PeriodMTD:
			if tx.Date.Month() != now.Month() {
				continue
			}
		case PeriodMonth:
			if tx.Date.Month() != p.Month {
				continue
			}
		}

		out = append(out, tx)
	}

	return out
}
