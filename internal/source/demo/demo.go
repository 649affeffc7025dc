// Package demo provides a built-in sample dataset so the app is usable
// without connecting a spreadsheet.
package demo

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

type item struct {
	merchant string
	category string
	amount   float64
}

// Sample transactions spread across recent weeks. Skewed toward dining
// and recurring subscriptions so the insight views have something to
// say.
var items = []item{
	{"Din Tai Fung", "Dining", 45.8}, {"NTUC FairPrice", "Groceries", 67.3}, {"Grab", "Transport", 12.5},
	{"Netflix", "Entertainment", 15.98}, {"Starbucks", "Dining", 8.9}, {"Shell", "Petrol", 85},
	{"Guardian", "Healthcare", 23.4}, {"Shopee", "Shopping", 34.5}, {"SP Services", "Utilities", 120},
	{"Singtel", "Utilities", 45}, {"Klook", "Travel", 250}, {"ActiveSG", "Fitness", 2.5},
	{"AIA", "Insurance", 180}, {"McDonald's", "Dining", 9.5}, {"Cold Storage", "Groceries", 55.2},
	{"Spotify", "Entertainment", 9.99}, {"Grab", "Transport", 15.3}, {"Toast Box", "Dining", 6.8},
	{"Amazon", "Shopping", 42}, {"Comfort Taxi", "Transport", 18},
	{"Salary Credit", "Income & Refunds", 5200}, {"Shopee Refund", "Income & Refunds", 15},
	{"Starbucks", "Dining", 7.5}, {"Starbucks", "Dining", 8.2}, {"Adobe", "Online Services", 28},
	{"Crystal Jade", "Dining", 38}, {"NTUC FairPrice", "Groceries", 82.1}, {"OCBC ATM", "ATM Cash", 200},
}

var (
	banks = []string{"DBS", "UOB", "OCBC"}
	cards = []string{"3115", "0076", "4949"}
)

// Source serves the sample rows. The now func is injectable so tests
// can pin the dates.
type Source struct {
	now func() time.Time
}

// New returns the demo source.
func New() *Source {
	return &Source{now: time.Now}
}

// Fetch returns the sample dataset in the same row layout a spreadsheet
// fetch produces, header included. Dates fan out backwards from today
// so every period filter has data.
func (s *Source) Fetch(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, []string{"Date", "Bank", "Card", "Merchant", "Amount", "Category", "", "Notes", "", "Currency"})

	for i, it := range items {
		date := now.AddDate(0, 0, -(i * 11 / 10))

		rows = append(rows, []string{
			fmt.Sprintf("%02d/%02d/%04d", date.Day(), int(date.Month()), date.Year()),
			banks[i%len(banks)],
			cards[i%len(cards)],
			it.merchant,
			strconv.FormatFloat(it.amount, 'f', -1, 64),
			it.category,
			"",
			"",
			"",
			"SGD",
		})
	}

	return rows, nil
}
