// Package cards ranks credit cards by projected monthly reward value
// for a given category spending mix. The rulebook is static data: rates
// and caps for Singapore cards, loaded once and never mutated.
package cards

// RewardType distinguishes how a card pays out.
type RewardType string

const (
	TypeCashback RewardType = "cashback"
	TypeMiles    RewardType = "miles"
)

// Rule is the reward rate for one category. For cashback cards Rate is
// a fraction of spend and Cap (if > 0) limits the monthly payout. For
// miles cards Rate is miles per dollar and Cap is unused.
type Rule struct {
	Rate float64
	Cap  float64
}

// Card is one entry of the static rulebook. Rule resolution for a
// category goes exact match, then All, then Default.
type Card struct {
	Name     string
	Bank     string
	Type     RewardType
	Fee      float64 // annual fee in dollars
	MinSpend float64 // monthly spend to unlock any reward, 0 = none
	Note     string  // extra qualification condition, if any
	Rewards  map[string]Rule
	All      *Rule // rate applied to every category
	Default  *Rule // fallback rate
}

// resolveRule walks the three-tier lookup chain for a category.
func (c Card) resolveRule(category string) (Rule, bool) {
	if r, ok := c.Rewards[category]; ok {
		return r, true
	}

	if c.All != nil {
		return *c.All, true
	}

	if c.Default != nil {
		return *c.Default, true
	}

	return Rule{}, false
}

// Rulebook holds verified 2025 rates for common Singapore cards.
var Rulebook = []Card{
	{
		Name: "DBS Live Fresh", Bank: "DBS", Type: TypeCashback, Fee: 194, MinSpend: 600,
		Rewards: map[string]Rule{
			"Online Services": {Rate: 0.05, Cap: 20},
			"Entertainment":   {Rate: 0.05, Cap: 20},
			"Dining":          {Rate: 0.05, Cap: 20},
			"Shopping":        {Rate: 0.05, Cap: 20},
		},
		Default: &Rule{Rate: 0.003},
	},
	{
		Name: "DBS Altitude", Bank: "DBS", Type: TypeMiles, Fee: 193,
		Rewards: map[string]Rule{
			"Travel": {Rate: 3.0},
		},
		Default: &Rule{Rate: 1.2},
	},
	{
		Name: "OCBC 365", Bank: "OCBC", Type: TypeCashback, Fee: 194, MinSpend: 800,
		Rewards: map[string]Rule{
			"Dining":    {Rate: 0.06, Cap: 80},
			"Groceries": {Rate: 0.03, Cap: 80},
			"Transport": {Rate: 0.03, Cap: 80},
			"Petrol":    {Rate: 0.229, Cap: 25},
		},
		Default: &Rule{Rate: 0.003},
	},
	{
		Name: "UOB One", Bank: "UOB", Type: TypeCashback, Fee: 193, MinSpend: 500,
		Note:    "5 txns + salary credit to UOB",
		All:     &Rule{Rate: 0.10, Cap: 50},
		Default: &Rule{Rate: 0.003},
	},
	{
		Name: "UOB PRVI Miles", Bank: "UOB", Type: TypeMiles, Fee: 257,
		Rewards: map[string]Rule{
			"Travel": {Rate: 2.4},
			"Dining": {Rate: 2.4},
		},
		Default: &Rule{Rate: 1.4},
	},
	{
		Name: "Citi Cash Back+", Bank: "Citi", Type: TypeCashback, Fee: 194, MinSpend: 800,
		Rewards: map[string]Rule{
			"Dining":    {Rate: 0.08, Cap: 25},
			"Groceries": {Rate: 0.08, Cap: 25},
			"Petrol":    {Rate: 0.08, Cap: 25},
		},
		Default: &Rule{Rate: 0.003},
	},
	{
		Name: "HSBC Revolution", Bank: "HSBC", Type: TypeCashback,
		Rewards: map[string]Rule{
			"Dining":          {Rate: 0.04},
			"Online Services": {Rate: 0.04},
			"Entertainment":   {Rate: 0.04},
		},
		Default: &Rule{Rate: 0.003},
	},
	{
		Name: "AMEX True Cashback", Bank: "AMEX", Type: TypeCashback,
		All:     &Rule{Rate: 0.015},
		Default: &Rule{Rate: 0.015},
	},
	{
		Name: "SC Simply Cash", Bank: "SC", Type: TypeCashback, Fee: 193,
		Rewards: map[string]Rule{
			"Dining":    {Rate: 0.06, Cap: 60},
			"Groceries": {Rate: 0.06, Cap: 60},
			"Petrol":    {Rate: 0.06, Cap: 60},
		},
		Default: &Rule{Rate: 0.015},
	},
}
