package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/models"
)

type recommendationTab int

const (
	tabJobs recommendationTab = iota
	tabCourses
)

// RecommendationsModel lists recommended jobs and courses in two tabs.
type RecommendationsModel struct {
	ctx  context.Context
	recs service.RecommendationService

	tab        recommendationTab
	jobs       []models.Job
	courses    []models.Course
	idx        int
	loading    bool
	refreshing bool
	err        error
}

func NewRecommendationsModel(ctx context.Context, recs service.RecommendationService) *RecommendationsModel {
	return &RecommendationsModel{ctx: ctx, recs: recs}
}

func (m *RecommendationsModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil
	return m.cmdLoad()
}

func (m *RecommendationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recommendationsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.jobs = msg.jobs
			m.courses = msg.courses
			m.idx = 0
		}
		return m, nil

	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(router.Dashboard)
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			if m.tab == tabJobs {
				m.tab = tabCourses
			} else {
				m.tab = tabJobs
			}
			m.idx = 0
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < m.count()-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			if m.refreshing {
				return m, nil
			}
			m.refreshing = true
			m.err = nil
			return m, m.cmdRefresh()
		}
	}

	return m, nil
}

func (m *RecommendationsModel) count() int {
	if m.tab == tabJobs {
		return len(m.jobs)
	}
	return len(m.courses)
}

func (m *RecommendationsModel) View() string {
	var b strings.Builder

	if m.tab == tabJobs {
		b.WriteString("[Jobs]  Courses\n\n")
	} else {
		b.WriteString(" Jobs  [Courses]\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.err != nil:
		b.WriteString(renderError(m.err))
		b.WriteString("\n")
	case m.count() == 0:
		b.WriteString("No recommendations yet. Press r to generate them.\n")
	case m.tab == tabJobs:
		for i, j := range m.jobs {
			b.WriteString(fmt.Sprintf("%s%3.0f%%  %s @ %s\n", cursor(i == m.idx), j.MatchScore, fitText(j.Title, 36), valueOrDash(j.Company)))
			if i == m.idx {
				b.WriteString(renderJob(j))
			}
		}
	default:
		for i, c := range m.courses {
			b.WriteString(fmt.Sprintf("%s%3.0f%%  %s (%s)\n", cursor(i == m.idx), c.MatchScore, fitText(c.Title, 36), valueOrDash(c.Provider)))
			if i == m.idx {
				b.WriteString(renderCourse(c))
			}
		}
	}

	if m.refreshing {
		b.WriteString("\n[Refreshing...]\n")
	}

	return renderPage("RECOMMENDATIONS", strings.TrimRight(b.String(), "\n"), "tab: jobs/courses │ ↑/↓: select │ r: refresh │ esc: dashboard")
}

func renderJob(j models.Job) string {
	indent := "        "
	out := indent + valueOrDash(j.Location)
	if j.Salary != "" {
		out += " │ " + j.Salary
	}
	out += "\n"
	if len(j.Skills) > 0 {
		out += indent + "Skills: " + strings.Join(j.Skills, ", ") + "\n"
	}
	if j.URL != "" {
		out += indent + j.URL + "\n"
	}
	return out
}

func renderCourse(c models.Course) string {
	indent := "        "
	out := indent + valueOrDash(c.Level) + " │ " + valueOrDash(c.Duration) + " │ " + valueOrDash(c.Price)
	if c.Rating > 0 {
		out += fmt.Sprintf(" │ ★ %.1f", c.Rating)
	}
	out += "\n"
	if c.URL != "" {
		out += indent + c.URL + "\n"
	}
	return out
}

func (m *RecommendationsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	recs := m.recs
	return func() tea.Msg {
		jobs, err := recs.Jobs(ctx)
		if err != nil {
			return recommendationsLoadedMsg{err: err}
		}
		courses, err := recs.Courses(ctx)
		return recommendationsLoadedMsg{jobs: jobs, courses: courses, err: err}
	}
}

func (m *RecommendationsModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	recs := m.recs
	return func() tea.Msg {
		return refreshDoneMsg{err: recs.Refresh(ctx)}
	}
}
