// Package tui implements the terminal front end: a router over Bubble Tea
// pages, gated by the route guard and driven by the session store.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/router"
	"github.com/MKhiriev/career-dashboard/internal/service"
	"github.com/MKhiriev/career-dashboard/internal/session"
	"github.com/MKhiriev/career-dashboard/internal/validators"
	"github.com/MKhiriev/career-dashboard/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	session   *session.Store
	pending   *adapter.PendingCounter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, sess *session.Store, pending *adapter.PendingCounter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		session:   sess,
		pending:   pending,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run opens the dashboard (or login when no session is active) and blocks
// until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	validator := validators.NewFormValidator()
	s := t.services

	pages := map[string]tea.Model{
		router.Login:           NewLoginModel(ctx, s.AuthService, validator),
		router.Signup:          NewSignupModel(ctx, s.AuthService, validator),
		router.Dashboard:       NewDashboardModel(ctx, s.AuthService, s.InsightsService),
		router.ResumeUpload:    NewResumeUploadModel(ctx, s.ResumeService),
		router.Timeline:        NewTimelineModel(ctx, s.TimelineService, validator),
		router.Qna:             NewQnaModel(ctx, s.QnaService, validator),
		router.Recommendations: NewRecommendationsModel(ctx, s.RecommendationService),
		router.Insights:        NewInsightsModel(ctx, s.InsightsService),
	}

	ev := newEvents()
	unsubscribeSession := t.session.Subscribe(ev.pushSession)
	defer unsubscribeSession()
	unsubscribePending := t.pending.Subscribe(ev.pushPending)
	defer unsubscribePending()

	guard := router.NewGuard(s.AuthService, nil, t.logger)
	root := NewRootModel(pages, router.Dashboard, guard, ev, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
