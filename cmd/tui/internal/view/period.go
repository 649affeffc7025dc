package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wzkoh/finsight/internal/analytics"
)

// PeriodSelectedMsg is emitted when the user confirms a reporting
// period.
type PeriodSelectedMsg struct {
	Period analytics.Period
}

// PeriodPicker is a reusable component for choosing the reporting
// window: the relative windows first, then each month of the current
// year up to now.
type PeriodPicker struct {
	options []analytics.Period
	cursor  int
}

func NewPeriodPicker(current analytics.Period, now time.Time) PeriodPicker {
	options := []analytics.Period{
		{Kind: analytics.PeriodMTD},
		{Kind: analytics.PeriodYTD},
		{Kind: analytics.PeriodAll},
	}

	for month := time.January; month <= now.Month(); month++ {
		options = append(options, analytics.Period{Kind: analytics.PeriodMonth, Month: month})
	}

	cursor := 0

	for i, opt := range options {
		if opt == current {
			cursor = i
		}
	}

	return PeriodPicker{options: options, cursor: cursor}
}

func (m PeriodPicker) Init() tea.Cmd {
	return nil
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		period := m.options[m.cursor]

		return m, func() tea.Msg {
			return PeriodSelectedMsg{Period: period}
		}
	}

	return m, nil
}

func (m PeriodPicker) View() string {
	s := "Select Period:\n\n"

	for i, opt := range m.options {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, opt.Label())
	}

	s += "\n(Enter to select, Esc to back)"

	return lipgloss.NewStyle().Padding(1).Render(s)
}
