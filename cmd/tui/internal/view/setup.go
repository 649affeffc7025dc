package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/wzkoh/finsight/internal/config"
	"github.com/wzkoh/finsight/internal/source"
	"github.com/wzkoh/finsight/internal/source/csvfile"
	"github.com/wzkoh/finsight/internal/source/demo"
	"github.com/wzkoh/finsight/internal/source/sheets"
)

type setupState int

const (
	setupStateForm setupState = iota
	setupStateConnecting
	setupStateError
)

// SourceReadyMsg is emitted once a source has been connected and its
// first fetch has succeeded.
type SourceReadyMsg struct {
	Svc  *source.Service
	Snap source.Snapshot
	Name source.Name
}

// SetupModel connects the app to a transaction source. Defaults come
// from the environment so a configured user only has to press enter.
type SetupModel struct {
	CommonModel

	state   setupState
	form    *huh.Form
	spinner spinner.Model
	err     error

	kind          string
	spreadsheetID string
	apiKey        string
	readRange     string
	csvPath       string
}

func NewSetupModel(cfg *config.Config) SetupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := SetupModel{
		spinner:       s,
		kind:          cfg.Source.Kind,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
		apiKey:        cfg.Sheets.APIKey,
		readRange:     cfg.Sheets.ReadRange,
		csvPath:       cfg.CSV.Path,
	}
	m.form = m.buildForm()

	return m
}

func (m SetupModel) Title() string { return "Connect a Source" }

func (m SetupModel) ShortHelp() string {
	switch m.state {
	case setupStateConnecting:
		return "Connecting..."
	case setupStateError:
		return "Enter: retry | Ctrl+C: quit"
	}

	return "Navigate form | Ctrl+C: quit"
}

func (m SetupModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectResultMsg:
		if msg.err != nil {
			m.state = setupStateError
			m.err = msg.err

			return m, nil
		}

		return m, func() tea.Msg {
			return SourceReadyMsg{Svc: msg.svc, Snap: msg.snap, Name: msg.name}
		}

	case tea.KeyMsg:
		if m.state == setupStateError && msg.Type == tea.KeyEnter {
			m.state = setupStateForm
			m.err = nil
			m.form = m.buildForm()

			return m, m.form.Init()
		}
	}

	switch m.state {
	case setupStateForm:
		return m.updateForm(msg)
	case setupStateConnecting:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m SetupModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = setupStateConnecting

	return m, tea.Batch(m.spinner.Tick, m.connectCmd())
}

func (m SetupModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("source").
				Title("Transaction Source").
				Options(
					huh.NewOption("Demo data", string(source.NameDemo)),
					huh.NewOption("Google Sheets", string(source.NameSheets)),
					huh.NewOption("CSV file", string(source.NameCSV)),
				).
				Value(&m.kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("spreadsheet_id").
				Title("Spreadsheet ID").
				Description("From the sheet URL, between /d/ and /edit").
				Value(&m.spreadsheetID),
			huh.NewInput().
				Key("api_key").
				Title("API Key").
				Description("Google Cloud API key with Sheets access").
				EchoMode(huh.EchoModePassword).
				Value(&m.apiKey),
		).WithHideFunc(func() bool { return m.kind != string(source.NameSheets) }),
		huh.NewGroup(
			huh.NewInput().
				Key("csv_path").
				Title("CSV Path").
				Placeholder("./transactions.csv").
				Value(&m.csvPath),
		).WithHideFunc(func() bool { return m.kind != string(source.NameCSV) }),
	).WithWidth(60).WithShowHelp(false)
}

func (m SetupModel) View() string {
	switch m.state {
	case setupStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())

	case setupStateConnecting:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			fmt.Sprintf("%s Connecting and fetching transactions...", m.spinner.View()),
		)

	case setupStateError:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Enter to retry)",
		)
	}

	return ""
}

type connectResultMsg struct {
	svc  *source.Service
	snap source.Snapshot
	name source.Name
	err  error
}

func (m SetupModel) connectCmd() tea.Cmd {
	// Read the submitted values back off the form; the bound fields
	// belong to the model copy that built it.
	kind := m.form.GetString("source")
	spreadsheetID := m.form.GetString("spreadsheet_id")
	apiKey := m.form.GetString("api_key")
	csvPath := m.form.GetString("csv_path")
	readRange := m.readRange

	return func() tea.Msg {
		ctx, cancel := FetchCtx()
		defer cancel()

		var (
			src source.RowSource
			err error
		)

		switch kind {
		case string(source.NameSheets):
			src, err = sheets.New(ctx, spreadsheetID, apiKey, readRange)
		case string(source.NameCSV):
			src, err = csvfile.New(csvPath)
		default:
			src = demo.New()
		}

		if err != nil {
			return connectResultMsg{err: err}
		}

		svc := source.NewService(src)

		snap, err := svc.Refresh(ctx)
		if err != nil {
			return connectResultMsg{err: err}
		}

		name := source.Name(kind)
		if name == "" {
			name = source.NameDemo
		}

		return connectResultMsg{svc: svc, snap: snap, name: name}
	}
}
