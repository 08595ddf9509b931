// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single gateway between the client and the career
// dashboard REST backend.
//
// Every call goes through a [Dispatcher], which attaches the bearer token
// and a trace id, tracks in-flight requests in a [PendingCounter], and turns
// every failure into an [*APIError] with a user-facing message. A 401 from
// any endpoint clears the persisted credentials and notifies the listeners
// registered with OnUnauthorized.
package adapter

import (
	"context"

	"github.com/MKhiriev/career-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// CredentialSource is the part of the credential store the dispatcher
// depends on.
type CredentialSource interface {
	// Token returns the persisted token or an empty string.
	Token() string
	// Clear removes the persisted credentials.
	Clear(ctx context.Context) error
}

// Dispatcher issues REST calls relative to the configured base URL.
//
// On success the raw response body is decoded into result, which may be nil
// when the caller does not need the body. On failure the returned error is
// always an [*APIError].
type Dispatcher interface {
	Get(ctx context.Context, path string, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Put(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string, result any) error

	// Upload sends form as multipart/form-data with POST.
	Upload(ctx context.Context, path string, form models.UploadForm, result any) error

	// Pending returns the number of requests currently in flight.
	Pending() int64

	// PendingCounter exposes the in-flight counter for subscription.
	PendingCounter() *PendingCounter

	// OnUnauthorized registers fn to be called after credentials have been
	// cleared in response to a 401.
	OnUnauthorized(fn func(ctx context.Context))
}
