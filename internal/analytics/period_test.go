package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/transaction"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func spend(d time.Time, merchant, category string, amount float64) transaction.Transaction {
	return transaction.Transaction{
		Date:     d,
		Merchant: merchant,
		Amount:   amount,
		Category: category,
		Currency: transaction.HomeCurrency,
		Kind:     transaction.KindSpending,
	}
}

func income(d time.Time, amount float64) transaction.Transaction {
	return transaction.Transaction{
		Date:     d,
		Merchant: "Salary Credit",
		Amount:   amount,
		Category: transaction.IncomeCategory,
		Currency: transaction.HomeCurrency,
		Kind:     transaction.KindIncome,
	}
}

func TestFilter(t *testing.T) {
	now := date(2025, time.June, 15)

	txns := []transaction.Transaction{
		spend(date(2025, time.June, 1), "a", "Dining", 10),
		spend(date(2025, time.June, 30), "b", "Dining", 10),
		spend(date(2025, time.March, 5), "c", "Dining", 10),
		spend(date(2024, time.June, 5), "d", "Dining", 10),
	}

	tests := []struct {
		name   string
		period analytics.Period
		want   []string
	}{
		{"mtd", analytics.Period{Kind: analytics.PeriodMTD}, []string{"a", "b"}},
		{"ytd", analytics.Period{Kind: analytics.PeriodYTD}, []string{"a", "b", "c"}},
		{"specific month", analytics.Period{Kind: analytics.PeriodMonth, Month: time.March}, []string{"c"}},
		{"all", analytics.Period{Kind: analytics.PeriodAll}, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.Filter(txns, tt.period, now)
			require.Len(t, got, len(tt.want))

			for i, merchant := range tt.want {
				assert.Equal(t, merchant, got[i].Merchant)
			}
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	now := date(2025, time.June, 15)

	assert.Empty(t, analytics.Filter(nil, analytics.Period{Kind: analytics.PeriodMTD}, now))
	assert.Empty(t, analytics.Filter(nil, analytics.Period{Kind: analytics.PeriodAll}, now))
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    analytics.Period
		wantErr bool
	}{
		{in: "mtd", want: analytics.Period{Kind: analytics.PeriodMTD}},
		{in: "", want: analytics.Period{Kind: analytics.PeriodMTD}},
		{in: "ytd", want: analytics.Period{Kind: analytics.PeriodYTD}},
		{in: "all", want: analytics.Period{Kind: analytics.PeriodAll}},
		{in: "3", want: analytics.Period{Kind: analytics.PeriodMonth, Month: time.March}},
		{in: "12", want: analytics.Period{Kind: analytics.PeriodMonth, Month: time.December}},
		{in: "0", wantErr: true},
		{in: "13", wantErr: true},
		{in: "sometime", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := analytics.ParsePeriod(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
