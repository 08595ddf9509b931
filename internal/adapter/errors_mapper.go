// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/career-dashboard/internal/app"
)

// errorBody is the subset of the backend error envelope the client reads.
type errorBody struct {
	Message string            `json:"message"`
	Errors  []json.RawMessage `json:"errors"`
}

// normalizeError converts a failed exchange into an [*APIError]. status is 0
// when no response was received. Text supplied by the server takes
// precedence over the per-status defaults.
func normalizeError(status int, body []byte, cause error) *APIError {
	msg := serverMessage(body)
	if msg == "" {
		msg = defaultMessage(status)
	}

	return &APIError{
		Kind:    kindForStatus(status),
		Message: msg,
		Status:  status,
		Cause:   cause,
	}
}

func kindForStatus(status int) Kind {
	switch {
	case status == 0:
		return KindConnectivity
	case status == http.StatusBadRequest:
		return KindValidation
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindUnknown
	}
}

func defaultMessage(status int) string {
	switch {
	case status == 0:
		return app.MsgBackendUnreachable
	case status == http.StatusBadRequest:
		return app.MsgInvalidRequest
	case status == http.StatusUnauthorized:
		return app.MsgSessionExpired
	case status == http.StatusNotFound:
		return app.MsgNotFound
	case status >= http.StatusInternalServerError:
		return app.MsgServerError
	default:
		return app.MsgGeneric
	}
}

// serverMessage extracts display text from an error body: the message
// field, else the errors list flattened with ", ". Non-JSON bodies yield "".
func serverMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	if msg := strings.TrimSpace(eb.Message); msg != "" {
		return msg
	}

	parts := make([]string, 0, len(eb.Errors))
	for _, raw := range eb.Errors {
		if part := flattenErrorItem(raw); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// flattenErrorItem renders one element of the errors list. Objects
// contribute their message field; strings contribute themselves; anything
// else is rendered as raw JSON.
func flattenErrorItem(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && strings.TrimSpace(obj.Message) != "" {
		return strings.TrimSpace(obj.Message)
	}

	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}
