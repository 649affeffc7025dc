package insights

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/cards"
	"github.com/wzkoh/finsight/internal/export"
	"github.com/wzkoh/finsight/internal/source"
	"github.com/wzkoh/finsight/internal/transaction"
)

const topMerchantCount = 5

type Handler struct {
	svc *source.Service
	now func() time.Time
}

func NewHandler(svc *source.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/leakages", h.leakages)
	r.Get("/cards", h.cards)
	r.Get("/transactions", h.transactions)
	r.Get("/export", h.export)
	r.Post("/refresh", h.refresh)
}

// filtered resolves the period query parameter and returns the matching
// transactions. ok=false means the 400 response was already written.
func (h *Handler) filtered(w http.ResponseWriter, r *http.Request) (analytics.Period, []transaction.Transaction, bool) {
	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return analytics.Period{}, nil, false
	}

	txns := analytics.Filter(h.svc.Transactions(), period, h.now())

	return period, txns, true
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	period, txns, ok := h.filtered(w, r)
	if !ok {
		return
	}

	now := h.now()
	summary := analytics.Summarize(txns, now)

	writeJSON(w, summaryResponse{
		Period:       period.String(),
		PeriodLabel:  period.Label(),
		Summary:      summary,
		TopMerchants: analytics.TopMerchants(txns, topMerchantCount),
		Snapshot:     h.svc.LastSnapshot(),
	})
}

func (h *Handler) leakages(w http.ResponseWriter, r *http.Request) {
	period, txns, ok := h.filtered(w, r)
	if !ok {
		return
	}

	summary := analytics.Summarize(txns, h.now())
	findings := analytics.DetectLeakages(txns, summary.TotalIncome)

	writeJSON(w, leakagesResponse{
		Period:   period.String(),
		Findings: findings,
	})
}

func (h *Handler) cards(w http.ResponseWriter, r *http.Request) {
	period, txns, ok := h.filtered(w, r)
	if !ok {
		return
	}

	summary := analytics.Summarize(txns, h.now())
	recs := cards.Recommend(summary.CategoryTotals, summary.TotalSpending)

	writeJSON(w, cardsResponse{
		Period:          period.String(),
		TotalSpending:   summary.TotalSpending,
		Recommendations: recs,
	})
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	period, txns, ok := h.filtered(w, r)
	if !ok {
		return
	}

	list := txns
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})

	writeJSON(w, transactionsResponse{
		Period:       period.String(),
		Count:        len(list),
		Transactions: toTransactionList(list),
	})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	period, txns, ok := h.filtered(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename(period.String(), h.now()))

	if err := export.Write(w, txns); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Refresh(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, snap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
