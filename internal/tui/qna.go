package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/internal/validators"
	"github.com/MKhiriev/career-dashboard/models"
)

const historyShown = 5

// QnaModel asks career questions, shows the answer with copy and rating
// actions, and lists the most recent questions.
type QnaModel struct {
	ctx       context.Context
	qna       service.QnaService
	validator validators.Validator

	question textinput.Model
	asking   bool
	answer   *models.QnaAnswer
	history  []models.QuestionHistoryItem
	status   string
	err      error
}

func NewQnaModel(ctx context.Context, qna service.QnaService, validator validators.Validator) *QnaModel {
	in := textinput.New()
	in.Placeholder = "How can I move into a senior role?"
	in.CharLimit = 1000
	in.Width = 60
	in.Focus()

	return &QnaModel{ctx: ctx, qna: qna, validator: validator, question: in}
}

func (m *QnaModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdHistory())
}

func (m *QnaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		m.asking = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		answer := msg.answer
		m.answer = &answer
		m.question.SetValue("")
		return m, m.cmdHistory()

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.history = msg.history.Items
		return m, nil

	case ratedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Thanks for the feedback"
		return m, clearStatusAfter(2 * time.Second)

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Answer copied to clipboard"
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(router.Dashboard)
		case key.Matches(msg, keys.copy):
			if m.answer == nil {
				return m, nil
			}
			return m, cmdCopy(m.answer.Answer)
		case key.Matches(msg, keys.helpful), key.Matches(msg, keys.unhelpful):
			if m.answer == nil || m.answer.QuestionID == "" {
				return m, nil
			}
			return m, m.cmdRate(m.answer.QuestionID, key.Matches(msg, keys.helpful))
		case key.Matches(msg, keys.enter):
			if m.asking {
				return m, nil
			}
			req := models.QnaRequest{Question: strings.TrimSpace(m.question.Value())}
			if err := m.validator.Validate(m.ctx, req); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.status = ""
			m.asking = true
			return m, m.cmdAsk(req)
		}
	}

	var cmd tea.Cmd
	m.question, cmd = m.question.Update(msg)
	return m, cmd
}

func (m *QnaModel) View() string {
	var b strings.Builder

	b.WriteString("Question │ [")
	b.WriteString(m.question.View())
	b.WriteString("]\n")
	if m.asking {
		b.WriteString("\n[Thinking...]\n")
	}

	if m.answer != nil {
		b.WriteString("\nAnswer")
		if m.answer.Category != "" {
			b.WriteString(" (" + m.answer.Category + ")")
		}
		b.WriteString(fmt.Sprintf(" │ confidence %.0f%%\n", m.answer.Confidence*100))
		b.WriteString(overlayBoxStyle.Render(m.answer.Answer))
		b.WriteString("\n")
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

	if len(m.history) > 0 {
		b.WriteString("\nRecent questions\n")
		for i, item := range m.history {
			if i == historyShown {
				break
			}
			b.WriteString("  • ")
			b.WriteString(fitText(item.Question, 60))
			b.WriteString("\n")
		}
	}

	return renderPage("CAREER Q&A", strings.TrimRight(b.String(), "\n"), "enter: ask │ ctrl+y: copy │ ctrl+t/ctrl+f: helpful/not │ esc: dashboard")
}

func (m *QnaModel) cmdAsk(req models.QnaRequest) tea.Cmd {
	ctx := m.ctx
	qna := m.qna
	return func() tea.Msg {
		answer, err := qna.Ask(ctx, req)
		return answerMsg{answer: answer, err: err}
	}
}

func (m *QnaModel) cmdHistory() tea.Cmd {
	ctx := m.ctx
	qna := m.qna
	return func() tea.Msg {
		history, err := qna.History(ctx, 1, historyShown)
		return historyLoadedMsg{history: history, err: err}
	}
}

func (m *QnaModel) cmdRate(questionID string, helpful bool) tea.Cmd {
	ctx := m.ctx
	qna := m.qna
	return func() tea.Msg {
		return ratedMsg{helpful: helpful, err: qna.Rate(ctx, questionID, helpful)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
