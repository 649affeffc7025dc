package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/wzkoh/finsight/cmd/tui/internal/view"
	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/config"
	"github.com/wzkoh/finsight/internal/source"
)

type View int

const (
	ViewSetup        View = 0
	ViewDashboard    View = 1
	ViewLeakages     View = 2
	ViewCards        View = 3
	ViewTransactions View = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)
	headerInfoStyle = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

type model struct {
	svc    *source.Service
	period analytics.Period

	currentView   View
	pickingPeriod bool
	refreshing    bool
	status        string

	setupView        view.SetupModel
	periodPicker     view.PeriodPicker
	dashboardView    view.DashboardModel
	leakagesView     view.LeakagesModel
	cardsView        view.CardsModel
	transactionsView view.TransactionsModel
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	return model{
		currentView:      ViewSetup,
		period:           analytics.Period{Kind: analytics.PeriodMTD},
		setupView:        view.NewSetupModel(cfg),
		dashboardView:    view.NewDashboardModel(),
		leakagesView:     view.NewLeakagesModel(),
		cardsView:        view.NewCardsModel(),
		transactionsView: view.NewTransactionsModel(),
	}
}

func (m model) Init() tea.Cmd {
	return m.setupView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case view.SourceReadyMsg:
		m.svc = msg.Svc
		m.currentView = ViewDashboard
		m.status = fmt.Sprintf("%s: %d transactions", msg.Name, msg.Snap.Count)

		return m.broadcastData(), nil

	case view.PeriodSelectedMsg:
		m.period = msg.Period
		m.pickingPeriod = false

		return m.broadcastData(), nil

	case refreshDoneMsg:
		m.refreshing = false

		if msg.err != nil {
			m.status = fmt.Sprintf("refresh failed: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("refreshed: %d transactions", msg.snap.Count)

		return m.broadcastData(), nil

	case view.BackMsg:
		m.currentView = ViewDashboard
		return m, nil

	case tea.WindowSizeMsg:
		return m.forwardToAll(msg)

	case tea.KeyMsg:
		if newModel, cmd, handled := m.handleKey(msg); handled {
			return newModel, cmd
		}
	}

	return m.forwardToCurrent(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	if m.currentView == ViewSetup {
		return m, nil, false
	}

	if m.pickingPeriod {
		if msg.Type == tea.KeyEsc {
			m.pickingPeriod = false
			return m, nil, true
		}

		var cmd tea.Cmd
		m.periodPicker, cmd = m.periodPicker.Update(msg)

		return m, cmd, true
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc":
		if m.currentView == ViewDashboard {
			return m, tea.Quit, true
		}

		m.currentView = ViewDashboard

		return m, nil, true
	case "1":
		m.currentView = ViewDashboard
		return m, nil, true
	case "2":
		m.currentView = ViewLeakages
		return m, nil, true
	case "3":
		m.currentView = ViewCards
		return m, nil, true
	case "4":
		m.currentView = ViewTransactions
		return m, nil, true
	case "t":
		m.pickingPeriod = true
		m.periodPicker = view.NewPeriodPicker(m.period, time.Now())

		return m, nil, true
	case "r":
		if m.refreshing {
			return m, nil, true
		}

		m.refreshing = true
		m.status = "refreshing..."

		return m, m.refreshCmd(), true
	}

	return m, nil, false
}

// broadcastData recomputes the period window and pushes it to every
// data view so they all render the same slice of the data.
func (m model) broadcastData() model {
	msg := view.DataMsg{
		Txns:   analytics.Filter(m.svc.Transactions(), m.period, time.Now()),
		Period: m.period,
		Now:    time.Now(),
	}

	newModel, _ := m.forwardToAll(msg)

	return newModel.(model)
}

func (m model) forwardToAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	update := func(v tea.Model) tea.Model {
		newView, cmd := v.Update(msg)
		cmds = append(cmds, cmd)

		return newView
	}

	m.dashboardView = update(m.dashboardView).(view.DashboardModel)
	m.leakagesView = update(m.leakagesView).(view.LeakagesModel)
	m.cardsView = update(m.cardsView).(view.CardsModel)
	m.transactionsView = update(m.transactionsView).(view.TransactionsModel)

	return m, tea.Batch(cmds...)
}

func (m model) forwardToCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewSetup:
		var newModel tea.Model
		newModel, cmd = m.setupView.Update(msg)
		m.setupView = newModel.(view.SetupModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewLeakages:
		var newModel tea.Model
		newModel, cmd = m.leakagesView.Update(msg)
		m.leakagesView = newModel.(view.LeakagesModel)
	case ViewCards:
		var newModel tea.Model
		newModel, cmd = m.cardsView.Update(msg)
		m.cardsView = newModel.(view.CardsModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	}

	return m, cmd
}

func (m model) current() view.View {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView
	case ViewLeakages:
		return m.leakagesView
	case ViewCards:
		return m.cardsView
	case ViewTransactions:
		return m.transactionsView
	}

	return m.setupView
}

func (m model) View() string {
	if m.currentView == ViewSetup {
		return titleStyle.Render("finsight") + "\n" + m.setupView.View()
	}

	if m.pickingPeriod {
		return titleStyle.Render("finsight") + "\n" + m.periodPicker.View()
	}

	current := m.current()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("finsight"),
		headerInfoStyle.Render(fmt.Sprintf("%s | %s | %s", current.Title(), m.period.Label(), m.status)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		current.View(),
		helpStyle.Render(current.ShortHelp()),
	)
}

type refreshDoneMsg struct {
	snap source.Snapshot
	err  error
}

func (m model) refreshCmd() tea.Cmd {
	svc := m.svc

	return func() tea.Msg {
		ctx, cancel := view.FetchCtx()
		defer cancel()

		snap, err := svc.Refresh(ctx)

		return refreshDoneMsg{snap: snap, err: err}
	}
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
