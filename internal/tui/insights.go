package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/models"
)

// InsightsModel renders the career report.
type InsightsModel struct {
	ctx      context.Context
	insights service.InsightsService

	report  *models.CareerReport
	loading bool
	err     error
}

func NewInsightsModel(ctx context.Context, insights service.InsightsService) *InsightsModel {
	return &InsightsModel{ctx: ctx, insights: insights}
}

func (m *InsightsModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil

	ctx := m.ctx
	insights := m.insights
	return func() tea.Msg {
		report, err := insights.Report(ctx)
		return reportLoadedMsg{report: report, err: err}
	}
}

func (m *InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			report := msg.report
			m.report = &report
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(router.Dashboard)
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *InsightsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Generating report...\n")
	case m.err != nil:
		b.WriteString(renderError(m.err))
		b.WriteString("\n")
	case m.report == nil:
		b.WriteString("No report available\n")
	default:
		r := m.report
		if r.GeneratedAt != "" {
			b.WriteString("Generated: " + r.GeneratedAt + "\n\n")
		}
		if r.Summary != nil {
			b.WriteString(renderStats(*r.Summary))
			b.WriteString("\n")
		}
		writeSection(&b, "Insights", r.Insights)
		writeSection(&b, "Top recommendations", r.TopRecommendations)
		b.WriteString(fmt.Sprintf("Timeline entries: %d\n", len(r.CareerTimeline)))
	}

	return renderPage("CAREER INSIGHTS", strings.TrimRight(b.String(), "\n"), "r: regenerate │ esc: dashboard")
}

func writeSection(b *strings.Builder, title string, items []json.RawMessage) {
	if len(items) == 0 {
		return
	}
	b.WriteString(title + "\n")
	for _, item := range items {
		b.WriteString("  • " + fitText(describeItem(item), 70) + "\n")
	}
	b.WriteString("\n")
}

// describeItem renders a free-form report entry. Strings are shown as is;
// objects show their title, message or description when present.
func describeItem(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, k := range []string{"title", "message", "description", "text"} {
			if v, ok := obj[k].(string); ok && v != "" {
				return v
			}
		}
	}
	return string(raw)
}
