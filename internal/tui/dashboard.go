package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/models"
)

type menuItem struct {
	title string
	route string
}

// dashboardMenu lists the protected pages. The entry without a route logs out.
var dashboardMenu = []menuItem{
	{title: "Upload resume", route: router.ResumeUpload},
	{title: "Career timeline", route: router.Timeline},
	{title: "Ask a question", route: router.Qna},
	{title: "Recommendations", route: router.Recommendations},
	{title: "Insights", route: router.Insights},
	{title: "Log out"},
}

// DashboardModel shows the user's summary stats and the navigation menu.
type DashboardModel struct {
	ctx      context.Context
	auth     service.AuthService
	insights service.InsightsService

	items   []menuItem
	idx     int
	stats   models.DashboardStats
	loading bool
	status  string
	err     error
}

func NewDashboardModel(ctx context.Context, auth service.AuthService, insights service.InsightsService) *DashboardModel {
	return &DashboardModel{
		ctx:      ctx,
		auth:     auth,
		insights: insights,
		items:    dashboardMenu,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil

	ctx := m.ctx
	insights := m.insights
	return func() tea.Msg {
		stats, err := insights.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignupSuccessNotice:
		m.status = "Welcome, " + msg.Name + "! Your account is ready."
		return m, nil

	case statsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.stats = msg.stats
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.enter):
			m.status = ""
			item := m.items[m.idx]
			if item.route == "" {
				m.auth.Logout(m.ctx)
				return m, nil
			}
			return m, navigate(item.route)
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if user := m.auth.CurrentUser(); user != nil {
		b.WriteString("Welcome back, ")
		b.WriteString(user.DisplayName())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading stats...\n")
	case m.err != nil:
		b.WriteString(renderError(m.err))
		b.WriteString("\n")
	default:
		b.WriteString(renderStats(m.stats))
	}
	b.WriteString("\n")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		idCell := fmt.Sprintf("%s%d", cursor(i == m.idx), i+1)
		b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", idCell, actionColWidth, item.title))
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ r: reload")
}

func renderStats(s models.DashboardStats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Milestones:        %d\n", s.TotalMilestones))
	b.WriteString(fmt.Sprintf("Recommendations:   %d\n", s.TotalRecommendations))
	b.WriteString(fmt.Sprintf("Resumes uploaded:  %d\n", s.ResumesUploaded))
	b.WriteString(fmt.Sprintf("Overall score:     %.0f%%\n", s.OverallScore))
	b.WriteString(fmt.Sprintf("Profile complete:  %.0f%%\n", s.ProfileCompleteness))
	return b.String()
}
