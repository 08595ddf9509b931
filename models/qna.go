package models

import "time"

// QnaRequest is a natural-language question, optionally about a milestone.
type QnaRequest struct {
	Question    string `json:"question"`
	MilestoneID string `json:"milestoneId,omitempty"`
}

// QnaAnswer is the backend's answer to a question.
type QnaAnswer struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
	QuestionID string  `json:"questionId"`
}

// QuestionHistoryItem is a previously asked question with its answer.
type QuestionHistoryItem struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence"`
	Helpful    *bool     `json:"helpful,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// QuestionHistoryPage is the data payload of GET /qna/history.
type QuestionHistoryPage struct {
	Items      []QuestionHistoryItem `json:"items"`
	Pagination *Pagination           `json:"pagination,omitempty"`
}

// QuestionHistory is the question history as exposed to the UI.
type QuestionHistory struct {
	Items      []QuestionHistoryItem
	Pagination Pagination
}

// RateRequest marks an answer as helpful or not.
type RateRequest struct {
	Helpful bool `json:"helpful"`
}
