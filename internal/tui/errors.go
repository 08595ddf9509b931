// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
)

// errorText returns the text shown for err. Dispatcher failures carry their
// own display message; local validation errors are shown as is.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func renderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render("Error: " + errorText(err))
}
