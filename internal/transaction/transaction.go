package transaction

import (
	"time"
)

// Kind separates money coming in from money going out.
type Kind string

const (
	KindIncome   Kind = "income"
	KindSpending Kind = "spending"
)

// HomeCurrency is the currency transactions default to when the source
// row carries none. Anything else counts as a foreign-currency
// transaction in the analytics.
const HomeCurrency = "SGD"

// IncomeCategory is the one category whose rows default to income when
// the source row has no explicit kind column.
const IncomeCategory = "Income & Refunds"

const (
	DefaultMerchant = "Unknown"
	DefaultCategory = "Others"
)

// Transaction is a single parsed spreadsheet row. It is a plain value:
// once built by the parser it is never mutated.
type Transaction struct {
	Date      time.Time
	Bank      string
	CardLabel string
	Merchant  string
	Amount    float64
	Category  string
	Notes     string
	Currency  string
	Kind      Kind
}

// IsIncome reports whether the transaction counts toward income. Any
// kind other than "income" counts as spending, matching how loosely
// typed source rows are classified.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}
