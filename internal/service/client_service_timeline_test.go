package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/mock"
	"github.com/MKhiriev/career-dashboard/models"
)

func newTestTimelineSvc(t *testing.T) (*timelineService, *mock.MockDispatcher) {
	t.Helper()
	d := mock.NewMockDispatcher(gomock.NewController(t))
	svc := NewTimelineService(d, logger.Nop()).(*timelineService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, d
}

func TestTimelineService_QueryString(t *testing.T) {
	svc, d := newTestTimelineSvc(t)

	d.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path string, result any) error {
			require.True(t, strings.HasPrefix(path, "/timelines/milestones?"))
			q, err := url.ParseQuery(strings.SplitN(path, "?", 2)[1])
			require.NoError(t, err)
			assert.Equal(t, "job", q.Get("type"))
			assert.Equal(t, "10", q.Get("limit"))
			assert.Equal(t, "2", q.Get("page"))
			assert.Equal(t, "1700000000000", q.Get("cacheBust"))
			fill(t, result, map[string]any{"success": true, "data": []any{}})
			return nil
		})

	_, err := svc.GetMilestones(context.Background(), models.MilestoneFilter{Type: models.MilestoneJob, Limit: 10, Page: 2})
	require.NoError(t, err)
}

func TestTimelineService_OnlyCacheBustWithoutFilter(t *testing.T) {
	svc, d := newTestTimelineSvc(t)

	d.EXPECT().Get(gomock.Any(), "/timelines/milestones?cacheBust=1700000000000", gomock.Any()).
		DoAndReturn(getReturning(t, map[string]any{"success": true}))

	page, err := svc.GetMilestones(context.Background(), models.MilestoneFilter{})
	require.NoError(t, err)
	assert.NotNil(t, page.Milestones)
	assert.Empty(t, page.Milestones)
}

func TestTimelineService_AcceptsBothShapes(t *testing.T) {
	milestone := map[string]any{"id": "m1", "title": "Go developer", "type": "job", "startDate": "2020-01-01T00:00:00Z"}

	tests := []struct {
		name    string
		payload map[string]any
		pages   int
	}{
		{
			name: "nested",
			payload: map[string]any{"success": true, "data": map[string]any{
				"data":       []any{milestone},
				"pagination": map[string]any{"page": 1, "limit": 10, "total": 1, "pages": 1},
			}},
			pages: 1,
		},
		{
			name:    "flat",
			payload: map[string]any{"success": true, "data": []any{milestone}},
			pages:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTestTimelineSvc(t)
			d.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(getReturning(t, tt.payload))

			page, err := svc.GetMilestones(context.Background(), models.MilestoneFilter{})
			require.NoError(t, err)
			require.Len(t, page.Milestones, 1)
			assert.Equal(t, "Go developer", page.Milestones[0].Title)
			assert.Equal(t, models.MilestoneJob, page.Milestones[0].Type)
			assert.Equal(t, tt.pages, page.Pagination.Pages)
		})
	}
}

func TestTimelineService_UnrecognisedPayloadIsEmpty(t *testing.T) {
	svc, d := newTestTimelineSvc(t)
	d.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(getReturning(t, map[string]any{"success": true, "data": "nope"}))

	page, err := svc.GetMilestones(context.Background(), models.MilestoneFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Milestones)
}

func TestTimelineService_ErrorPassedThrough(t *testing.T) {
	svc, d := newTestTimelineSvc(t)
	d.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.APIError{Kind: adapter.KindServer, Status: 500, Message: "Server error. Please try again later."})

	_, err := svc.GetMilestones(context.Background(), models.MilestoneFilter{})
	assert.ErrorIs(t, err, adapter.ErrServer)
}
