package cards

import (
	"fmt"
	"sort"

	"github.com/wzkoh/finsight/internal/transaction"
)

// mileValue is the assumed dollar value of one air mile.
const mileValue = 0.018

// benefitRateCashback and benefitRateMiles are the minimum rates worth
// calling out as a benefit line.
const (
	benefitRateCashback = 0.03
	benefitRateMiles    = 1.5
	maxBenefits         = 5
	maxRecommendations  = 5
)

// Recommendation is the projected monthly value of one card for the
// user's current spending mix.
type Recommendation struct {
	Name      string     `json:"name"`
	Bank      string     `json:"bank"`
	Type      RewardType `json:"type"`
	Gross     float64    `json:"gross"` // monthly reward value before fees
	Net       float64    `json:"net"`   // gross minus fee/12
	Fee       float64    `json:"fee"`
	MinSpend  float64    `json:"min_spend"`
	Qualified bool       `json:"qualified"`
	Benefits  []string   `json:"benefits"`
	Note      string     `json:"note,omitempty"`
}

// Recommend scores every rulebook card against the per-category spend
// and ranks them by net monthly value, best first, truncated to the top
// five. totalSpend is only used to test minimum-spend qualification.
func Recommend(categorySpend map[string]float64, totalSpend float64) []Recommendation {
	// Iterate categories biggest-spend first so benefit lines are
	// deterministic and lead with what matters.
	categories := make([]string, 0, len(categorySpend))
	for cat := range categorySpend {
		categories = append(categories, cat)
	}

	sort.Slice(categories, func(i, j int) bool {
		if categorySpend[categories[i]] != categorySpend[categories[j]] {
			return categorySpend[categories[i]] > categorySpend[categories[j]]
		}

		return categories[i] < categories[j]
	})

	recs := make([]Recommendation, 0, len(Rulebook))

	for _, card := range Rulebook {
		rec := Recommendation{
			Name:      card.Name,
			Bank:      card.Bank,
			Type:      card.Type,
			Fee:       card.Fee,
			MinSpend:  card.MinSpend,
			Qualified: card.MinSpend == 0 || totalSpend >= card.MinSpend,
			Note:      card.Note,
		}

		for _, cat := range categories {
			rule, ok := card.resolveRule(cat)
			if !ok {
				continue
			}

			amount := categorySpend[cat]

			switch card.Type {
			case TypeCashback:
				earned := amount * rule.Rate
				if rule.Cap > 0 && earned > rule.Cap {
					earned = rule.Cap
				}

				rec.Gross += earned

				if rule.Rate >= benefitRateCashback && len(rec.Benefits) < maxBenefits {
					rec.Benefits = append(rec.Benefits, fmt.Sprintf("%s %s: %.0f%% → $%.2f",
						transaction.CategoryIcon(cat), cat, rule.Rate*100, earned))
				}
			case TypeMiles:
				miles := amount * rule.Rate
				rec.Gross += miles * mileValue

				if rule.Rate >= benefitRateMiles && len(rec.Benefits) < maxBenefits {
					rec.Benefits = append(rec.Benefits, fmt.Sprintf("%s %s: %g mpd → %.0f mi",
						transaction.CategoryIcon(cat), cat, rule.Rate, miles))
				}
			}
		}

		rec.Net = rec.Gross - card.Fee/12

		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Net > recs[j].Net
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return recs
}
