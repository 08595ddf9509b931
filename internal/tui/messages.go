package tui

import (
	"github.com/MKhiriev/career-dashboard/internal/session"
	"github.com/MKhiriev/career-dashboard/models"
)

// NavigateTo asks the [RootModel] to open the page registered under Page.
// The route is resolved and gated before the page is shown.
type NavigateTo struct {
	Page string
	// Payload, when set, is delivered to the new page instead of its Init.
	Payload any
}

type sessionChangedMsg session.State

type pendingMsg int64

type authResultMsg struct {
	user models.User
	err  error
}

type statsLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type milestonesLoadedMsg struct {
	page models.MilestonePage
	err  error
}

type resumesLoadedMsg struct {
	items []models.Resume
	err   error
}

type resumeUploadedMsg struct {
	resp models.UploadResponse
	err  error
}

type resumeDeletedMsg struct {
	err error
}

type answerMsg struct {
	answer models.QnaAnswer
	err    error
}

type historyLoadedMsg struct {
	history models.QuestionHistory
	err     error
}

type ratedMsg struct {
	helpful bool
	err     error
}

type recommendationsLoadedMsg struct {
	jobs    []models.Job
	courses []models.Course
	err     error
}

type refreshDoneMsg struct {
	err error
}

type reportLoadedMsg struct {
	report models.CareerReport
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// SignupSuccessNotice is delivered to the dashboard after a signup.
type SignupSuccessNotice struct {
	Name string
}
