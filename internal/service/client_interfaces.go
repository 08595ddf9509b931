package service

import (
	"context"
	"io"

	"github.com/MKhiriev/career-dashboard/models"
)

// AuthService is the only component that mutates the session state. It ties
// the session store, the credential store and the auth endpoints together.
type AuthService interface {
	// Login posts creds to /auth/login. On a complete success response the
	// credentials are persisted and then the session becomes authenticated.
	Login(ctx context.Context, creds models.AuthRequest) (models.User, error)

	// Signup behaves like Login against /auth/signup.
	Signup(ctx context.Context, creds models.AuthRequest) (models.User, error)

	// Logout clears persisted credentials, resets the session and notifies
	// logout listeners. It is local, idempotent and never fails.
	Logout(ctx context.Context)

	// Restore hydrates the session from durable storage without any network
	// call and reports whether a session was restored.
	Restore(ctx context.Context) bool

	// IsAuthenticated reports whether a non-expired token is persisted. It
	// performs no I/O.
	IsAuthenticated() bool

	Token() string
	CurrentUser() *models.User

	GetProfile(ctx context.Context) (models.User, error)

	// UpdateProfile sends user to the backend; a returned user replaces the
	// persisted one with the token unchanged.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// OnLogout registers fn to run after every logout, explicit or forced.
	OnLogout(fn func())
}

type TimelineService interface {
	GetMilestones(ctx context.Context, filter models.MilestoneFilter) (models.MilestonePage, error)
}

type RecommendationService interface {
	Jobs(ctx context.Context) ([]models.Job, error)
	Courses(ctx context.Context) ([]models.Course, error)
	Refresh(ctx context.Context) error
}

type QnaService interface {
	Ask(ctx context.Context, req models.QnaRequest) (models.QnaAnswer, error)
	History(ctx context.Context, page, limit int) (models.QuestionHistory, error)
	Rate(ctx context.Context, questionID string, helpful bool) error
}

type ResumeService interface {
	Upload(ctx context.Context, fileName string, r io.Reader) (models.UploadResponse, error)
	UploadFile(ctx context.Context, path string) (models.UploadResponse, error)
	List(ctx context.Context) ([]models.Resume, error)
	Get(ctx context.Context, id string) (models.Resume, error)
	Delete(ctx context.Context, id string) error
	AIParse(ctx context.Context, text string) (models.ExtractedData, error)
}

type InsightsService interface {
	Report(ctx context.Context) (models.CareerReport, error)
	Stats(ctx context.Context) (models.DashboardStats, error)
}
