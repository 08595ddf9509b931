package service

import (
	"context"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/models"
)

const reportPath = "/insights/report"

type insightsService struct {
	dispatcher adapter.Dispatcher
}

// NewInsightsService returns the service behind both the dashboard summary
// and the insights page. Both are served by POST /insights/report.
func NewInsightsService(dispatcher adapter.Dispatcher) InsightsService {
	return &insightsService{dispatcher: dispatcher}
}

func (i *insightsService) Report(ctx context.Context) (models.CareerReport, error) {
	resp, err := adapter.Post[models.CareerReport](ctx, i.dispatcher, reportPath, struct{}{})
	if err != nil {
		return models.CareerReport{}, err
	}
	if resp.Data == nil {
		return models.CareerReport{}, adapter.NewUnexpectedResponseError(ErrEmptyReport)
	}
	return *resp.Data, nil
}

// Stats returns the report summary, or zero stats when the report has none.
func (i *insightsService) Stats(ctx context.Context) (models.DashboardStats, error) {
	resp, err := adapter.Post[models.CareerReport](ctx, i.dispatcher, reportPath, struct{}{})
	if err != nil {
		return models.DashboardStats{}, err
	}
	if resp.Data == nil || resp.Data.Summary == nil {
		return models.DashboardStats{}, nil
	}
	return *resp.Data.Summary, nil
}
