package view

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/transaction"
)

// TransactionsModel is a browsable table of the selected period's
// transactions, newest first.
type TransactionsModel struct {
	CommonModel

	table  table.Model
	txns   []transaction.Transaction
	period analytics.Period

	// bankFilter cycles through the banks present in the data; empty
	// means no filter.
	bankFilter string
	banks      []string
}

func NewTransactionsModel() TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Merchant", Width: 26},
		{Title: "Category", Width: 20},
		{Title: "Bank", Width: 6},
		{Title: "Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{table: t}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	return "b: bank filter | t: period | r: refresh | Esc: dashboard | q: quit"
}

func (m TransactionsModel) Init() tea.Cmd {
	return nil
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		txns := make([]transaction.Transaction, len(msg.Txns))
		copy(txns, msg.Txns)
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Date.After(txns[j].Date)
		})

		m.txns = txns
		m.period = msg.Period
		m.banks = bankList(txns)
		m.bankFilter = ""
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.table.SetHeight(msg.Height - 8)

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "b" {
			m.cycleBankFilter()
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) View() string {
	bankLabel := "All"
	if m.bankFilter != "" {
		bankLabel = m.bankFilter
	}

	header := fmt.Sprintf("%s | [b] Bank: %s | %d transactions",
		m.period.Label(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(bankLabel),
		len(m.table.Rows()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func (m *TransactionsModel) cycleBankFilter() {
	if len(m.banks) == 0 {
		return
	}

	if m.bankFilter == "" {
		m.bankFilter = m.banks[0]
		return
	}

	for i, bank := range m.banks {
		if bank != m.bankFilter {
			continue
		}

		if i == len(m.banks)-1 {
			m.bankFilter = ""
		} else {
			m.bankFilter = m.banks[i+1]
		}

		return
	}

	m.bankFilter = ""
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txns))

	for _, tx := range m.txns {
		if m.bankFilter != "" && tx.Bank != m.bankFilter {
			continue
		}

		amount := FormatMoney(tx.Amount)
		if tx.IsIncome() {
			amount = "+" + amount
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			tx.Merchant,
			fmt.Sprintf("%s %s", transaction.CategoryIcon(tx.Category), tx.Category),
			tx.Bank,
			amount,
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func bankList(txns []transaction.Transaction) []string {
	seen := make(map[string]bool)

	var banks []string

	for _, tx := range txns {
		if tx.Bank == "" || seen[tx.Bank] {
			continue
		}

		seen[tx.Bank] = true
		banks = append(banks, tx.Bank)
	}

	sort.Strings(banks)

	return banks
}
