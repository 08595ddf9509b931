package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/internal/validators"
	"github.com/MKhiriev/career-dashboard/models"
)

const timelinePageSize = 10

// "" means all types.
var timelineFilters = []models.MilestoneType{
	"",
	models.MilestoneJob,
	models.MilestoneEducation,
	models.MilestoneCertification,
	models.MilestoneAchievement,
	models.MilestoneProject,
}

type TimelineModel struct {
	ctx       context.Context
	timeline  service.TimelineService
	validator validators.Validator

	filterIdx  int
	page       int
	milestones []models.Milestone
	pagination models.Pagination
	idx        int
	loading    bool
	err        error
}

func NewTimelineModel(ctx context.Context, timeline service.TimelineService, validator validators.Validator) *TimelineModel {
	return &TimelineModel{ctx: ctx, timeline: timeline, validator: validator, page: 1}
}

func (m *TimelineModel) Init() tea.Cmd {
	return m.load()
}

func (m *TimelineModel) filter() models.MilestoneFilter {
	return models.MilestoneFilter{
		Type:  timelineFilters[m.filterIdx],
		Limit: timelinePageSize,
		Page:  m.page,
	}
}

func (m *TimelineModel) load() tea.Cmd {
	filter := m.filter()
	if err := m.validator.Validate(m.ctx, filter); err != nil {
		m.err = err
		return nil
	}

	m.loading = true
	m.err = nil

	ctx := m.ctx
	timeline := m.timeline
	return func() tea.Msg {
		page, err := timeline.GetMilestones(ctx, filter)
		return milestonesLoadedMsg{page: page, err: err}
	}
}

func (m *TimelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case milestonesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.milestones = msg.page.Milestones
		m.pagination = msg.page.Pagination
		m.idx = 0
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(router.Dashboard)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.milestones)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.filter):
			m.filterIdx = (m.filterIdx + 1) % len(timelineFilters)
			m.page = 1
			return m, m.load()
		case key.Matches(msg, keys.right):
			if m.pagination.Pages > m.page {
				m.page++
				return m, m.load()
			}
		case key.Matches(msg, keys.left):
			if m.page > 1 {
				m.page--
				return m, m.load()
			}
		case key.Matches(msg, keys.refresh):
			return m, m.load()
		}
	}

	return m, nil
}

func (m *TimelineModel) View() string {
	var b strings.Builder

	filter := string(timelineFilters[m.filterIdx])
	if filter == "" {
		filter = "all"
	}
	b.WriteString("Filter: ")
	b.WriteString(filter)
	if m.pagination.Pages > 0 {
		b.WriteString(fmt.Sprintf(" │ page %d of %d", m.page, m.pagination.Pages))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.err != nil:
		b.WriteString(renderError(m.err))
		b.WriteString("\n")
	case len(m.milestones) == 0:
		b.WriteString("No milestones yet. Upload a resume to build your timeline.\n")
	default:
		now := time.Now()
		for i, ms := range m.milestones {
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor(i == m.idx), service.MilestoneIcon(ms.Type), ms.Title))
			if i != m.idx {
				continue
			}
			b.WriteString(renderMilestone(ms, now))
		}
	}

	return renderPage("CAREER TIMELINE", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ f: filter │ ←/→: page │ r: reload │ esc: dashboard")
}

func renderMilestone(ms models.Milestone, now time.Time) string {
	var b strings.Builder
	indent := "     "

	if ms.Company != "" {
		b.WriteString(indent + ms.Company)
		if ms.Location != "" {
			b.WriteString(", " + ms.Location)
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + service.FormatDateRange(ms) + " (" + service.CalculateDuration(ms, now) + ")\n")
	if ms.Description != "" {
		b.WriteString(indent + fitText(ms.Description, 70) + "\n")
	}
	if len(ms.Skills) > 0 {
		b.WriteString(indent + "Skills: " + strings.Join(ms.Skills, ", ") + "\n")
	}
	if len(ms.Technologies) > 0 {
		b.WriteString(indent + "Tech: " + strings.Join(ms.Technologies, ", ") + "\n")
	}
	return b.String()
}
