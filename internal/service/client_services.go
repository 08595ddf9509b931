package service

import (
	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/session"
	"github.com/MKhiriev/career-dashboard/internal/store"
)

type ClientServices struct {
	AuthService           AuthService
	TimelineService       TimelineService
	RecommendationService RecommendationService
	QnaService            QnaService
	ResumeService         ResumeService
	InsightsService       InsightsService
}

func NewClientServices(dispatcher adapter.Dispatcher, credentials store.CredentialStore, sess *session.Store, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:           NewAuthService(dispatcher, credentials, sess, logger),
		TimelineService:       NewTimelineService(dispatcher, logger),
		RecommendationService: NewRecommendationService(dispatcher),
		QnaService:            NewQnaService(dispatcher),
		ResumeService:         NewResumeService(dispatcher, logger),
		InsightsService:       NewInsightsService(dispatcher),
	}
}
