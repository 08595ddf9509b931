package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/models"
)

type recommendationService struct {
	dispatcher adapter.Dispatcher
}

func NewRecommendationService(dispatcher adapter.Dispatcher) RecommendationService {
	return &recommendationService{dispatcher: dispatcher}
}

// Jobs returns job recommendations. Missing data yields an empty slice.
func (r *recommendationService) Jobs(ctx context.Context) ([]models.Job, error) {
	resp, err := adapter.Get[[]models.Job](ctx, r.dispatcher, "/recommendations/jobs")
	if err != nil {
		return nil, err
	}
	if jobs := resp.Value(); jobs != nil {
		return jobs, nil
	}
	return []models.Job{}, nil
}

// Courses returns course recommendations. Missing data yields an empty slice.
func (r *recommendationService) Courses(ctx context.Context) ([]models.Course, error) {
	resp, err := adapter.Get[[]models.Course](ctx, r.dispatcher, "/recommendations/courses")
	if err != nil {
		return nil, err
	}
	if courses := resp.Value(); courses != nil {
		return courses, nil
	}
	return []models.Course{}, nil
}

// Refresh asks the backend to recompute recommendations.
func (r *recommendationService) Refresh(ctx context.Context) error {
	_, err := adapter.Post[json.RawMessage](ctx, r.dispatcher, "/recommendations/refresh", struct{}{})
	return err
}
