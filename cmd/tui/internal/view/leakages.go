package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wzkoh/finsight/internal/analytics"
)

var (
	severityHighStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("203"))
	severityMediumStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))
	findingBoxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(64)
)

// LeakagesModel lists detected spending leaks for the selected period,
// worst first.
type LeakagesModel struct {
	CommonModel

	findings []analytics.Finding
	period   analytics.Period
}

func NewLeakagesModel() LeakagesModel {
	return LeakagesModel{}
}

func (m LeakagesModel) Title() string { return "Spending Leakages" }

func (m LeakagesModel) ShortHelp() string {
	return "t: period | r: refresh | Esc: dashboard | q: quit"
}

func (m LeakagesModel) Init() tea.Cmd {
	return nil
}

func (m LeakagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		summary := analytics.Summarize(msg.Txns, msg.Now)
		m.findings = analytics.DetectLeakages(msg.Txns, summary.TotalIncome)
		m.period = msg.Period

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}

	return m, nil
}

func (m LeakagesModel) View() string {
	if len(m.findings) == 0 {
		return lipgloss.NewStyle().Padding(2).Render(
			incomeStyle.Render("No leakages found. ") +
				fmt.Sprintf("Nothing stands out in %s.", m.period.Label()),
		)
	}

	boxes := make([]string, 0, len(m.findings))

	for _, f := range m.findings {
		badge := severityMediumStyle.Render("MEDIUM")
		if f.Severity == analytics.SeverityHigh {
			badge = severityHighStyle.Render("HIGH")
		}

		boxes = append(boxes, findingBoxStyle.Render(
			fmt.Sprintf("%s  %s  %s\n%s",
				badge,
				lipgloss.NewStyle().Bold(true).Render(f.Title),
				expenseStyle.Render(FormatMoney(f.Amount)),
				kpiTitleStyle.Render(f.Description),
			),
		))
	}

	header := fmt.Sprintf("%d potential leaks in %s\n", len(m.findings), m.period.Label())

	return lipgloss.NewStyle().Padding(1).Render(
		header + strings.Join(boxes, "\n"),
	)
}
