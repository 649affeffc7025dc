package analytics_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/transaction"
)

func TestDetectLeakages_RecurringMerchant(t *testing.T) {
	txns := []transaction.Transaction{
		spend(date(2025, time.June, 1), "Netflix", "Entertainment", 15.98),
		spend(date(2025, time.June, 8), "Netflix", "Entertainment", 15.98),
		spend(date(2025, time.June, 15), "Netflix", "Entertainment", 15.98),
	}

	findings := analytics.DetectLeakages(txns, 5000)

	require.Len(t, findings, 1)
	assert.Equal(t, "Recurring: Netflix", findings[0].Title)
	assert.Equal(t, analytics.SeverityMedium, findings[0].Severity)
	assert.InDelta(t, 47.94, findings[0].Amount, 1e-9)
}

func TestDetectLeakages_RecurringHighSeverity(t *testing.T) {
	// Total above 100 upgrades severity.
	txns := []transaction.Transaction{
		spend(date(2025, time.June, 1), "Gym", "Fitness", 45),
		spend(date(2025, time.June, 8), "Gym", "Fitness", 45),
		spend(date(2025, time.June, 15), "Gym", "Fitness", 45),
	}

	findings := analytics.DetectLeakages(txns, 5000)

	require.Len(t, findings, 1)
	assert.Equal(t, analytics.SeverityHigh, findings[0].Severity)
	assert.InDelta(t, 135, findings[0].Amount, 1e-9)
}

func TestDetectLeakages_RecurringThresholds(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		want    int
	}{
		{"only two occurrences", []float64{20, 20}, 0},
		{"average too high", []float64{60, 60, 60}, 0},
		{"total too small", []float64{9, 9, 9}, 0},
		{"qualifies", []float64{15, 15, 15}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txns []transaction.Transaction
			for i, amt := range tt.amounts {
				txns = append(txns, spend(date(2025, time.June, 1+i), "Spotify", "Entertainment", amt))
			}

			assert.Len(t, analytics.DetectLeakages(txns, 5000), tt.want)
		})
	}
}

func TestDetectLeakages_DiscretionaryOverspend(t *testing.T) {
	txns := []transaction.Transaction{
		spend(date(2025, time.June, 1), "Crystal Jade", "Dining", 400),
		spend(date(2025, time.June, 2), "Shopee", "Shopping", 300),
		spend(date(2025, time.June, 3), "Adobe", "Online Services", 300),
	}

	findings := analytics.DetectLeakages(txns, 3000)

	require.Len(t, findings, 1)
	assert.Equal(t, "Discretionary > 30% of income", findings[0].Title)
	assert.Equal(t, analytics.SeverityHigh, findings[0].Severity)
	assert.InDelta(t, 1000, findings[0].Amount, 1e-9)
}

func TestDetectLeakages_DiscretionaryUnderThreshold(t *testing.T) {
	txns := []transaction.Transaction{
		spend(date(2025, time.June, 1), "Crystal Jade", "Dining", 800),
	}

	// 800 of 3000 is under 30%; essentials never count.
	assert.Empty(t, analytics.DetectLeakages(txns, 3000))
}

func TestDetectLeakages_IncomeFallback(t *testing.T) {
	// With no income the 5000 fallback keeps the ratio meaningful:
	// 1600 of 5000 is 32%.
	txns := []transaction.Transaction{
		spend(date(2025, time.June, 1), "Shopee", "Shopping", 1600),
	}

	findings := analytics.DetectLeakages(txns, 0)

	require.Len(t, findings, 1)
	assert.Equal(t, "Discretionary > 30% of income", findings[0].Title)
}

func TestDetectLeakages_DiningFrequency(t *testing.T) {
	var txns []transaction.Transaction
	for i := 0; i < 21; i++ {
		txns = append(txns, spend(date(2025, time.June, 1+i%28), "Toast Box", "Dining", 4))
	}

	findings := analytics.DetectLeakages(txns, 5000)

	// 21 small dining charges also trip the recurring check; find the
	// dining-frequency entry.
	var dining *analytics.Finding
	for i := range findings {
		if findings[i].Title == "Dining out 21× this period" {
			dining = &findings[i]
		}
	}

	require.NotNil(t, dining)
	assert.Equal(t, analytics.SeverityMedium, dining.Severity)
	assert.InDelta(t, 21*4*0.25, dining.Amount, 1e-9)
}

func TestDetectLeakages_ForeignCurrency(t *testing.T) {
	fx1 := spend(date(2025, time.June, 1), "Amazon US", "Shopping", 100)
	fx1.Currency = "USD"
	fx2 := spend(date(2025, time.June, 2), "Booking.com", "Travel", 100)
	fx2.Currency = "EUR"

	findings := analytics.DetectLeakages([]transaction.Transaction{fx1, fx2}, 5000)

	require.Len(t, findings, 1)
	assert.Equal(t, "2 foreign currency txns", findings[0].Title)
	assert.Equal(t, "~$7 in fees. Use multi-currency card (Wise, YouTrip).", findings[0].Description)
	assert.Equal(t, analytics.SeverityMedium, findings[0].Severity)
	assert.InDelta(t, 7.00, findings[0].Amount, 1e-9)
}

func TestDetectLeakages_IgnoresIncome(t *testing.T) {
	txns := []transaction.Transaction{
		income(date(2025, time.June, 1), 5200),
		income(date(2025, time.June, 8), 5200),
		income(date(2025, time.June, 15), 5200),
	}

	assert.Empty(t, analytics.DetectLeakages(txns, 5200))
}

func TestDetectLeakages_SortedByAmountDescending(t *testing.T) {
	var txns []transaction.Transaction

	// Recurring Netflix (47.94), recurring Gym (135, high), FX fees, and
	// a discretionary blowout all at once.
	for i := 0; i < 3; i++ {
		txns = append(txns,
			spend(date(2025, time.June, 1+i), "Netflix", "Entertainment", 15.98),
			spend(date(2025, time.June, 4+i), "Gym", "Fitness", 45),
		)
	}

	fx := spend(date(2025, time.June, 20), "Amazon US", "Shopping", 200)
	fx.Currency = "USD"
	txns = append(txns, fx, spend(date(2025, time.June, 21), "Shopee", "Shopping", 1800))

	findings := analytics.DetectLeakages(txns, 5000)
	require.NotEmpty(t, findings)

	sorted := sort.SliceIsSorted(findings, func(i, j int) bool {
		return findings[i].Amount > findings[j].Amount
	})
	assert.True(t, sorted, "findings must be ordered by amount, largest first")
}
