package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/models"
)

// ResumeUploadModel uploads a resume from a local file path and lists the
// resumes already on the backend.
type ResumeUploadModel struct {
	ctx     context.Context
	resumes service.ResumeService

	path      textinput.Model
	items     []models.Resume
	idx       int
	loading   bool
	uploading bool
	status    string
	err       error
}

func NewResumeUploadModel(ctx context.Context, resumes service.ResumeService) *ResumeUploadModel {
	path := textinput.New()
	path.Placeholder = "/path/to/resume.pdf"
	path.Width = 50
	path.Focus()

	return &ResumeUploadModel{ctx: ctx, resumes: resumes, path: path}
}

func (m *ResumeUploadModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(textinput.Blink, m.cmdList())
}

func (m *ResumeUploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resumesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case resumeUploadedMsg:
		m.uploading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.path.SetValue("")
		m.status = fmt.Sprintf("Uploaded %s (%s)", valueOrDash(msg.resp.Filename), service.FormatFileSize(msg.resp.Size))
		return m, m.cmdList()

	case resumeDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Resume deleted"
		return m, m.cmdList()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(router.Dashboard)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
			return m, nil
		case key.Matches(msg, keys.delete):
			if m.idx < len(m.items) {
				return m, m.cmdDelete(m.items[m.idx].ID)
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.uploading {
				return m, nil
			}
			m.status = ""
			m.err = nil
			m.uploading = true
			return m, m.cmdUpload(m.path.Value())
		}
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m *ResumeUploadModel) View() string {
	var b strings.Builder

	b.WriteString("File │ [")
	b.WriteString(m.path.View())
	b.WriteString("]\n")
	if m.uploading {
		b.WriteString("\n[Uploading...]\n")
	} else {
		b.WriteString("\n[Upload]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(renderError(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\nYour resumes\n")
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No resumes uploaded yet\n")
	default:
		for i, r := range m.items {
			name := r.OriginalName
			if name == "" {
				name = r.Filename
			}
			b.WriteString(fmt.Sprintf("%s%s %-32s %10s  %s\n",
				cursor(i == m.idx),
				service.StatusIcon(r.ProcessingStatus),
				fitText(name, 32),
				service.FormatFileSize(r.FileSize),
				service.FormatDate(r.CreatedAt),
			))
		}
	}

	return renderPage("RESUME UPLOAD", strings.TrimRight(b.String(), "\n"), "enter: upload │ ↑/↓: select │ ctrl+d: delete │ esc: dashboard")
}

func (m *ResumeUploadModel) cmdList() tea.Cmd {
	ctx := m.ctx
	resumes := m.resumes
	return func() tea.Msg {
		items, err := resumes.List(ctx)
		return resumesLoadedMsg{items: items, err: err}
	}
}

func (m *ResumeUploadModel) cmdUpload(path string) tea.Cmd {
	ctx := m.ctx
	resumes := m.resumes
	return func() tea.Msg {
		resp, err := resumes.UploadFile(ctx, path)
		return resumeUploadedMsg{resp: resp, err: err}
	}
}

func (m *ResumeUploadModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	resumes := m.resumes
	return func() tea.Msg {
		return resumeDeletedMsg{err: resumes.Delete(ctx, id)}
	}
}
