package insights

import (
	"time"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/cards"
	"github.com/wzkoh/finsight/internal/source"
	"github.com/wzkoh/finsight/internal/transaction"
)

type summaryResponse struct {
	Period       string                    `json:"period"`
	PeriodLabel  string                    `json:"period_label"`
	Summary      analytics.Summary         `json:"summary"`
	TopMerchants []analytics.MerchantTotal `json:"top_merchants"`
	Snapshot     source.Snapshot           `json:"snapshot"`
}

type leakagesResponse struct {
	Period   string              `json:"period"`
	Findings []analytics.Finding `json:"findings"`
}

type cardsResponse struct {
	Period          string                 `json:"period"`
	TotalSpending   float64                `json:"total_spending"`
	Recommendations []cards.Recommendation `json:"recommendations"`
}

type transactionsResponse struct {
	Period       string                `json:"period"`
	Count        int                   `json:"count"`
	Transactions []transactionResponse `json:"transactions"`
}

type transactionResponse struct {
	Date     time.Time        `json:"date"`
	Bank     string           `json:"bank"`
	Card     string           `json:"card,omitempty"`
	Merchant string           `json:"merchant"`
	Amount   float64          `json:"amount"`
	Category string           `json:"category"`
	Notes    string           `json:"notes,omitempty"`
	Currency string           `json:"currency"`
	Kind     transaction.Kind `json:"kind"`
}

func toTransactionList(txns []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txns))
	for i, tx := range txns {
		resp[i] = transactionResponse{
			Date:     tx.Date,
			Bank:     tx.Bank,
			Card:     tx.CardLabel,
			Merchant: tx.Merchant,
			Amount:   tx.Amount,
			Category: tx.Category,
			Notes:    tx.Notes,
			Currency: tx.Currency,
			Kind:     tx.Kind,
		}
	}

	return resp
}
