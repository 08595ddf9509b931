package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/models"
)

const (
	defaultHistoryPage  = 1
	defaultHistoryLimit = 20
)

type qnaService struct {
	dispatcher adapter.Dispatcher
}

func NewQnaService(dispatcher adapter.Dispatcher) QnaService {
	return &qnaService{dispatcher: dispatcher}
}

func (q *qnaService) Ask(ctx context.Context, req models.QnaRequest) (models.QnaAnswer, error) {
	resp, err := adapter.Post[models.QnaAnswer](ctx, q.dispatcher, "/qna/ask", req)
	if err != nil {
		return models.QnaAnswer{}, err
	}
	if resp.Data == nil {
		return models.QnaAnswer{}, adapter.NewUnexpectedResponseError(ErrEmptyAnswer)
	}
	return *resp.Data, nil
}

// History returns one page of previously asked questions. Non-positive page
// or limit fall back to 1 and 20; a missing payload yields an empty page
// with the requested paging.
func (q *qnaService) History(ctx context.Context, page, limit int) (models.QuestionHistory, error) {
	if page <= 0 {
		page = defaultHistoryPage
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	path := fmt.Sprintf("/qna/history?page=%d&limit=%d", page, limit)
	resp, err := adapter.Get[models.QuestionHistoryPage](ctx, q.dispatcher, path)
	if err != nil {
		return models.QuestionHistory{}, err
	}

	history := models.QuestionHistory{
		Items:      []models.QuestionHistoryItem{},
		Pagination: models.Pagination{Page: page, Limit: limit},
	}
	if resp.Data == nil {
		return history, nil
	}
	if resp.Data.Items != nil {
		history.Items = resp.Data.Items
	}
	if resp.Data.Pagination != nil {
		history.Pagination = *resp.Data.Pagination
	}
	return history, nil
}

func (q *qnaService) Rate(ctx context.Context, questionID string, helpful bool) error {
	questionID = strings.TrimSpace(questionID)
	if questionID == "" {
		return ErrEmptyQuestionID
	}

	path := "/qna/" + url.PathEscape(questionID) + "/rate"
	_, err := adapter.Post[json.RawMessage](ctx, q.dispatcher, path, models.RateRequest{Helpful: helpful})
	return err
}
