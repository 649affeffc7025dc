package view

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wzkoh/finsight/internal/analytics"
	"github.com/wzkoh/finsight/internal/transaction"
)

const (
	dashboardCategoryRows = 8
	categoryBarWidth      = 24
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

var (
	kpiTitleStyle = lipgloss.NewStyle().Faint(true)
	kpiBoxStyle   = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	sectionTitleStyle = lipgloss.NewStyle().Bold(true).PaddingTop(1)
	incomeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	expenseStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// DashboardModel is the overview screen: headline figures, category
// breakdown and trends for the selected period.
type DashboardModel struct {
	CommonModel

	summary   analytics.Summary
	merchants []analytics.MerchantTotal
	period    analytics.Period
	hasData   bool
}

func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "t: period | r: refresh | 2: leakages | 3: cards | 4: transactions | q: quit"
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		m.summary = analytics.Summarize(msg.Txns, msg.Now)
		m.merchants = analytics.TopMerchants(msg.Txns, 5)
		m.period = msg.Period
		m.hasData = len(msg.Txns) > 0

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if !m.hasData {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("No transactions in %s.", m.period.Label()),
		)
	}

	sections := []string{
		m.viewKPIs(),
		sectionTitleStyle.Render("Spending by Category"),
		m.viewCategories(),
		sectionTitleStyle.Render("Last 14 Days"),
		m.viewDailyTrend(),
	}

	if len(m.summary.MonthlyTrend) > 1 {
		sections = append(sections,
			sectionTitleStyle.Render("Monthly Trend"),
			m.viewMonthlyTrend(),
		)
	}

	sections = append(sections,
		sectionTitleStyle.Render("Top Merchants"),
		m.viewMerchants(),
	)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m DashboardModel) viewKPIs() string {
	net := incomeStyle
	if m.summary.NetCashflow < 0 {
		net = expenseStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		kpiBox("Spending", expenseStyle.Render(FormatMoney(m.summary.TotalSpending))),
		kpiBox("Income", incomeStyle.Render(FormatMoney(m.summary.TotalIncome))),
		kpiBox("Net", net.Render(FormatMoney(m.summary.NetCashflow))),
		kpiBox("Avg Txn", FormatMoney(m.summary.AverageTransaction)),
	)
}

func kpiBox(title, value string) string {
	return kpiBoxStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, kpiTitleStyle.Render(title), value),
	)
}

func (m DashboardModel) viewCategories() string {
	type catTotal struct {
		name  string
		total float64
	}

	cats := make([]catTotal, 0, len(m.summary.CategoryTotals))
	for name, total := range m.summary.CategoryTotals {
		cats = append(cats, catTotal{name: name, total: total})
	}

	sort.Slice(cats, func(i, j int) bool {
		if cats[i].total != cats[j].total {
			return cats[i].total > cats[j].total
		}

		return cats[i].name < cats[j].name
	})

	if len(cats) == 0 {
		return kpiTitleStyle.Render("no spending yet")
	}

	if len(cats) > dashboardCategoryRows {
		cats = cats[:dashboardCategoryRows]
	}

	max := cats[0].total

	var b strings.Builder

	for _, c := range cats {
		width := int(c.total / max * categoryBarWidth)
		if width < 1 {
			width = 1
		}

		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(transaction.CategoryColor(c.name))).
			Render(strings.Repeat("█", width))

		fmt.Fprintf(&b, "%s %-22s %s %s\n",
			transaction.CategoryIcon(c.name), c.name, bar, FormatMoney(c.total))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) viewDailyTrend() string {
	points := m.summary.DailyTrend

	var max float64
	for _, p := range points {
		if p.Amount > max {
			max = p.Amount
		}
	}

	if max == 0 {
		return kpiTitleStyle.Render("no spending in the last two weeks")
	}

	var spark strings.Builder

	for _, p := range points {
		idx := int(p.Amount / max * float64(len(sparkLevels)-1))
		spark.WriteRune(sparkLevels[idx])
		spark.WriteRune(' ')
	}

	first := points[0].Date.Format("02 Jan")
	last := points[len(points)-1].Date.Format("02 Jan")

	return fmt.Sprintf("%s\n%s%s%s",
		expenseStyle.Render(spark.String()),
		kpiTitleStyle.Render(first),
		strings.Repeat(" ", len(points)*2-len(first)-len(last)),
		kpiTitleStyle.Render(last),
	)
}

func (m DashboardModel) viewMonthlyTrend() string {
	trend := m.summary.MonthlyTrend
	if len(trend) > 6 {
		trend = trend[len(trend)-6:]
	}

	var b strings.Builder

	for _, bucket := range trend {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			bucket.Month,
			incomeStyle.Render(fmt.Sprintf("+%s", FormatK(bucket.Income))),
			expenseStyle.Render(fmt.Sprintf("-%s", FormatK(bucket.Expenses))),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) viewMerchants() string {
	if len(m.merchants) == 0 {
		return kpiTitleStyle.Render("no spending yet")
	}

	var b strings.Builder

	for i, mt := range m.merchants {
		fmt.Fprintf(&b, "%d. %-24s %s (%d txns)\n", i+1, mt.Merchant, FormatMoney(mt.Total), mt.Count)
	}

	return strings.TrimRight(b.String(), "\n")
}
