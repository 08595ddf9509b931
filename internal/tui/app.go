package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/models"
)

// RootModel is a TUI router:
// 1) keeps the active page, keyed by route path
// 2) gates every NavigateTo through the route guard
// 3) follows session changes and the in-flight request count
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string
	guard   *router.Guard
	events  *events

	user    *models.User
	busy    bool
	spinner spinner.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers pages and opens startPage through the guard.
func NewRootModel(pages map[string]tea.Model, startPage string, guard *router.Guard, ev *events, buildInfo models.AppBuildInfo) RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return RootModel{
		pages:     pages,
		current:   guard.Enter(startPage),
		guard:     guard,
		events:    ev,
		spinner:   s,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.events.waitSession(), r.events.waitPending()}
	if page := r.page(); page != nil {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)

	case sessionChangedMsg:
		r.user = msg.User
		cmd := r.events.waitSession()
		switch {
		case !msg.Authenticated && router.IsProtected(r.current):
			next, navCmd := r.navigate(NavigateTo{Page: router.Login})
			return next, tea.Batch(cmd, navCmd)
		case msg.Authenticated && router.IsPublic(r.current):
			next, navCmd := r.navigate(NavigateTo{Page: router.Dashboard})
			return next, tea.Batch(cmd, navCmd)
		}
		return r, cmd

	case pendingMsg:
		wasBusy := r.busy
		r.busy = msg > 0
		cmd := r.events.waitPending()
		if r.busy && !wasBusy {
			return r, tea.Batch(cmd, r.spinner.Tick)
		}
		return r, cmd

	case spinner.TickMsg:
		if !r.busy {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	page := r.page()
	if page == nil {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	route := r.guard.Enter(nav.Page)
	next, exists := r.pages[route]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = route

	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
	}
	return r, next.Init()
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

// Current returns the route of the active page.
func (r RootModel) Current() string {
	return r.current
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	body := renderPage("CAREER DASHBOARD", "", "")
	if page := r.page(); page != nil {
		body = page.View()
	}
	return appStyle.Render(r.header() + "\n\n" + body)
}

func (r RootModel) header() string {
	out := "Career Dashboard"
	if r.user != nil {
		out += " │ " + r.user.DisplayName()
	}
	if r.busy {
		out += " │ " + r.spinner.View() + " loading"
	}
	return headerStyle.Render(out)
}
