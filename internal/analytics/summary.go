package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/wzkoh/finsight/internal/transaction"
)

// dailyTrendDays is the width of the rolling daily-spending window,
// ending on (and including) today.
const dailyTrendDays = 14

// MonthBucket is one entry of the monthly income/expense trend.
type MonthBucket struct {
	Key      string  `json:"key"`   // "2025-01", sort key
	Month    string  `json:"month"` // "Jan"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// DailyPoint is one day of the rolling daily-spending window.
type DailyPoint struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// MerchantTotal is aggregate spend at a single merchant.
type MerchantTotal struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Summary is the aggregate view of a transaction set. All monetary
// fields are plain sums; nothing here is formatted for display.
type Summary struct {
	TotalSpending      float64            `json:"total_spending"`
	TotalIncome        float64            `json:"total_income"`
	NetCashflow        float64            `json:"net_cashflow"`
	SpendingCount      int                `json:"spending_count"`
	IncomeCount        int                `json:"income_count"`
	AverageTransaction float64            `json:"average_transaction"`
	CategoryTotals     map[string]float64 `json:"category_totals"`
	BankTotals         map[string]float64 `json:"bank_totals"`
	MonthlyTrend       []MonthBucket      `json:"monthly_trend"`
	DailyTrend         []DailyPoint       `json:"daily_trend"`
}

// Summarize aggregates a transaction set. The daily window is the last
// dailyTrendDays calendar days of now's location, so the result is a
// pure function of (txns, now).
func Summarize(txns []transaction.Transaction, now time.Time) Summary {
	s := Summary{
		CategoryTotals: make(map[string]float64),
		BankTotals:     make(map[string]float64),
	}

	months := make(map[string]*MonthBucket)

	for _, tx := range txns {
		key := fmt.Sprintf("%d-%02d", tx.Date.Year(), int(tx.Date.Month()))

		bucket, ok := months[key]
		if !ok {
			bucket = &MonthBucket{Key: key, Month: tx.Date.Format("Jan")}
			months[key] = bucket
		}

		if tx.IsIncome() {
			s.TotalIncome += tx.Amount
			s.IncomeCount++
			bucket.Income += tx.Amount

			continue
		}

		s.TotalSpending += tx.Amount
		s.SpendingCount++
		s.CategoryTotals[tx.Category] += tx.Amount
		s.BankTotals[tx.Bank] += tx.Amount
		bucket.Expenses += tx.Amount
	}

	s.NetCashflow = s.TotalIncome - s.TotalSpending

	if s.SpendingCount > 0 {
		s.AverageTransaction = s.TotalSpending / float64(s.SpendingCount)
	}

	s.MonthlyTrend = make([]MonthBucket, 0, len(months))
	for _, b := range months {
		s.MonthlyTrend = append(s.MonthlyTrend, *b)
	}

	sort.Slice(s.MonthlyTrend, func(i, j int) bool {
		return s.MonthlyTrend[i].Key < s.MonthlyTrend[j].Key
	})

	s.DailyTrend = dailyTrend(txns, now)

	return s
}

// dailyTrend buckets spending by calendar day over the rolling window,
// oldest first, with zero-valued points for quiet days.
func dailyTrend(txns []transaction.Transaction, now time.Time) []DailyPoint {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	byDay := make(map[string]float64)

	for _, tx := range txns {
		if tx.IsIncome() {
			continue
		}

		byDay[tx.Date.Format(time.DateOnly)] += tx.Amount
	}

	points := make([]DailyPoint, 0, dailyTrendDays)

	for i := dailyTrendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, DailyPoint{
			Date:   day,
			Amount: byDay[day.Format(time.DateOnly)],
		})
	}

	return points
}

// TopMerchants ranks merchants by total spend, largest first, truncated
// to at most n entries.
func TopMerchants(txns []transaction.Transaction, n int) []MerchantTotal {
	totals := make(map[string]*MerchantTotal)

	for _, tx := range txns {
		if tx.IsIncome() {
			continue
		}

		mt, ok := totals[tx.Merchant]
		if !ok {
			mt = &MerchantTotal{Merchant: tx.Merchant}
			totals[tx.Merchant] = mt
		}

		mt.Total += tx.Amount
		mt.Count++
	}

	out := make([]MerchantTotal, 0, len(totals))
	for _, mt := range totals {
		out = append(out, *mt)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}

		return out[i].Merchant < out[j].Merchant
	})

	if len(out) > n {
		out = out[:n]
	}

	return out
}
