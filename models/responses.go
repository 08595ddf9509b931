package models

import "encoding/json"

// APIResponse is the envelope every feature endpoint wraps its payload in.
// Token and User are only populated by the auth endpoints.
type APIResponse[T any] struct {
	Success bool              `json:"success"`
	Data    *T                `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  []json.RawMessage `json:"errors,omitempty"`
	Token   string            `json:"token,omitempty"`
	User    *User             `json:"user,omitempty"`
}

// Value returns the payload or the zero value of T when data is absent.
func (r APIResponse[T]) Value() T {
	if r.Data == nil {
		var zero T
		return zero
	}
	return *r.Data
}

// Pagination is the paging metadata attached to list endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
