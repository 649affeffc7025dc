package analytics

import (
	"fmt"
	"sort"

	"github.com/wzkoh/finsight/internal/transaction"
)

// Severity grades how urgently a finding deserves attention.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Finding is a detected spending pattern that likely represents waste.
// Amount is the estimated dollar impact, which also orders the output.
type Finding struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
}

// FallbackIncome stands in for the period's income when no income rows
// exist, so the discretionary-ratio check keeps a sane denominator.
const FallbackIncome = 5000

// Heuristic thresholds. These are fixed policy, not configuration.
const (
	recurringMinCount    = 3
	recurringMaxAverage  = 50
	recurringMinTotal    = 30
	recurringHighTotal   = 100
	discretionaryRatio   = 0.30
	diningCountThreshold = 20
	diningSavingsRate    = 0.25
	foreignFeeRate       = 0.035
)

// discretionaryCategories are the non-essential spend buckets counted
// against income by the ratio check.
var discretionaryCategories = map[string]bool{
	"Dining":          true,
	"Entertainment":   true,
	"Shopping":        true,
	"Online Services": true,
}

// DetectLeakages runs the four leakage heuristics over a
// period-filtered transaction set. Income should be the period's total
// income; zero falls back to FallbackIncome. Findings come back sorted
// by estimated amount, largest first, with ties keeping emission order.
func DetectLeakages(txns []transaction.Transaction, income float64) []Finding {
	if income <= 0 {
		income = FallbackIncome
	}

	var spending []transaction.Transaction

	for _, tx := range txns {
		if !tx.IsIncome() {
			spending = append(spending, tx)
		}
	}

	var findings []Finding

	findings = append(findings, recurringMerchants(spending)...)
	findings = append(findings, discretionaryOverspend(spending, income)...)
	findings = append(findings, diningFrequency(spending)...)
	findings = append(findings, foreignCurrency(spending)...)

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Amount > findings[j].Amount
	})

	return findings
}

// recurringMerchants flags merchants with at least three small charges:
// the signature of a subscription or habitual spend.
func recurringMerchants(spending []transaction.Transaction) []Finding {
	type merchantStat struct {
		total float64
		count int
	}

	stats := make(map[string]*merchantStat)

	var order []string

	for _, tx := range spending {
		st, ok := stats[tx.Merchant]
		if !ok {
			st = &merchantStat{}
			stats[tx.Merchant] = st

			order = append(order, tx.Merchant)
		}

		st.total += tx.Amount
		st.count++
	}

	var findings []Finding

	for _, merchant := range order {
		st := stats[merchant]
		if st.count < recurringMinCount {
			continue
		}

		avg := st.total / float64(st.count)
		if avg >= recurringMaxAverage || st.total <= recurringMinTotal {
			continue
		}

		sev := SeverityMedium
		if st.total > recurringHighTotal {
			sev = SeverityHigh
		}

		findings = append(findings, Finding{
			Severity:    sev,
			Title:       fmt.Sprintf("Recurring: %s", merchant),
			Description: fmt.Sprintf("%d transactions avg $%.2f, total $%.2f. Review this subscription.", st.count, avg, st.total),
			Amount:      st.total,
		})
	}

	return findings
}

func discretionaryOverspend(spending []transaction.Transaction, income float64) []Finding {
	var total float64

	for _, tx := range spending {
		if discretionaryCategories[tx.Category] {
			total += tx.Amount
		}
	}

	if total/income <= discretionaryRatio {
		return nil
	}

	return []Finding{{
		Severity:    SeverityHigh,
		Title:       "Discretionary > 30% of income",
		Description: fmt.Sprintf("$%.0f on non-essentials (%.0f%% of income).", total, total/income*100),
		Amount:      total,
	}}
}

func diningFrequency(spending []transaction.Transaction) []Finding {
	var (
		total float64
		count int
	)

	for _, tx := range spending {
		if tx.Category == "Dining" {
			total += tx.Amount
			count++
		}
	}

	if count <= diningCountThreshold {
		return nil
	}

	return []Finding{{
		Severity:    SeverityMedium,
		Title:       fmt.Sprintf("Dining out %d× this period", count),
		Description: fmt.Sprintf("$%.0f total. Cooking 5 more meals could save ~$%.0f.", total, total*diningSavingsRate),
		Amount:      total * diningSavingsRate,
	}}
}

func foreignCurrency(spending []transaction.Transaction) []Finding {
	var (
		total float64
		count int
	)

	for _, tx := range spending {
		if tx.Currency != "" && tx.Currency != transaction.HomeCurrency {
			total += tx.Amount
			count++
		}
	}

	if count == 0 {
		return nil
	}

	fees := total * foreignFeeRate

	return []Finding{{
		Severity:    SeverityMedium,
		Title:       fmt.Sprintf("%d foreign currency txns", count),
		Description: fmt.Sprintf("~$%.0f in fees. Use multi-currency card (Wise, YouTrip).", fees),
		Amount:      fees,
	}}
}
