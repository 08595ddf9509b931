package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/models"
)

const milestonesPath = "/timelines/milestones"

type timelineService struct {
	dispatcher adapter.Dispatcher
	now        func() time.Time
	logger     *logger.Logger
}

func NewTimelineService(dispatcher adapter.Dispatcher, logger *logger.Logger) TimelineService {
	return &timelineService{dispatcher: dispatcher, now: time.Now, logger: logger}
}

// GetMilestones fetches one page of milestones. Every call carries a
// cacheBust parameter so intermediaries never serve a stale timeline.
func (t *timelineService) GetMilestones(ctx context.Context, filter models.MilestoneFilter) (models.MilestonePage, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", string(filter.Type))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	q.Set("cacheBust", strconv.FormatInt(t.now().UnixMilli(), 10))

	resp, err := adapter.Get[json.RawMessage](ctx, t.dispatcher, milestonesPath+"?"+q.Encode())
	if err != nil {
		return models.MilestonePage{}, err
	}
	if !resp.Success || resp.Data == nil {
		return models.MilestonePage{Milestones: []models.Milestone{}}, nil
	}

	page, ok := decodeMilestones(*resp.Data)
	if !ok {
		t.logger.Warn().Str("func", "timelineService.GetMilestones").Msg("unrecognised milestones payload")
	}
	return page, nil
}

// decodeMilestones accepts both {"data":[...],"pagination":{...}} and a bare
// array. Anything else yields an empty page.
func decodeMilestones(raw json.RawMessage) (models.MilestonePage, bool) {
	trimmed := bytes.TrimSpace(raw)
	empty := models.MilestonePage{Milestones: []models.Milestone{}}
	if len(trimmed) == 0 {
		return empty, false
	}

	switch trimmed[0] {
	case '[':
		var list []models.Milestone
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return empty, false
		}
		if list == nil {
			list = []models.Milestone{}
		}
		return models.MilestonePage{Milestones: list}, true
	case '{':
		var page models.MilestonePage
		if err := json.Unmarshal(trimmed, &page); err != nil || page.Milestones == nil {
			return empty, false
		}
		return page, true
	default:
		return empty, false
	}
}
