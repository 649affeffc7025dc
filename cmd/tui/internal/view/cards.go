package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/cards"
)

var (
	cardBoxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(64)
	bestCardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Width(64)
	cardTypeStyle = lipgloss.NewStyle().Faint(true)
)

// CardsModel ranks credit cards by projected monthly value for the
// selected period's spending mix.
type CardsModel struct {
	CommonModel

	recs          []cards.Recommendation
	totalSpending float64
	period        analytics.Period
}

func NewCardsModel() CardsModel {
	return CardsModel{}
}

func (m CardsModel) Title() string { return "Card Recommendations" }

func (m CardsModel) ShortHelp() string {
	return "t: period | r: refresh | Esc: dashboard | q: quit"
}

func (m CardsModel) Init() tea.Cmd {
	return nil
}

func (m CardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		summary := analytics.Summarize(msg.Txns, msg.Now)
		m.recs = cards.Recommend(summary.CategoryTotals, summary.TotalSpending)
		m.totalSpending = summary.TotalSpending
		m.period = msg.Period

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}

	return m, nil
}

func (m CardsModel) View() string {
	if len(m.recs) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No spending to score cards against.")
	}

	header := fmt.Sprintf("Best cards for %s of spending in %s\n",
		FormatMoney(m.totalSpending), m.period.Label())

	boxes := make([]string, 0, len(m.recs))

	for i, rec := range m.recs {
		boxes = append(boxes, m.viewCard(i, rec))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		header + strings.Join(boxes, "\n"),
	)
}

func (m CardsModel) viewCard(rank int, rec cards.Recommendation) string {
	style := cardBoxStyle
	if rank == 0 {
		style = bestCardStyle
	}

	net := incomeStyle.Render(FormatMoney(rec.Net) + "/mo")
	if rec.Net < 0 {
		net = expenseStyle.Render(FormatMoney(rec.Net) + "/mo")
	}

	title := fmt.Sprintf("%d. %s %s  %s  %s",
		rank+1,
		lipgloss.NewStyle().Bold(true).Render(rec.Name),
		cardTypeStyle.Render(fmt.Sprintf("(%s, %s)", rec.Bank, rec.Type)),
		net,
		kpiTitleStyle.Render(fmt.Sprintf("fee %s/yr", FormatMoney(rec.Fee))),
	)

	lines := []string{title}

	for _, benefit := range rec.Benefits {
		lines = append(lines, "   "+benefit)
	}

	if !rec.Qualified {
		lines = append(lines, severityMediumStyle.Render(
			fmt.Sprintf("   min spend %s not met", FormatMoney(rec.MinSpend)),
		))
	}

	if rec.Note != "" {
		lines = append(lines, kpiTitleStyle.Render("   "+rec.Note))
	}

	return style.Render(strings.Join(lines, "\n"))
}
