package view

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/transaction"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// DataMsg carries the current period's transactions to the data views.
// The root model broadcasts it after every refresh or period change so
// each screen recomputes from the same window.
type DataMsg struct {
	Txns   []transaction.Transaction
	Period analytics.Period
	Now    time.Time
}
