// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// career dashboard client.
//
// All Msg* constants are human-readable strings shown to the user when the
// backend did not supply its own explanation of a failure. Keeping them in
// one place ensures consistent wording across the dispatcher and the TUI.
package app

const (
	// MsgGeneric is shown for failures that fit no other category.
	MsgGeneric = "Something went wrong. Please try again."

	// MsgBackendUnreachable is shown when no HTTP response was received at
	// all (connection refused, DNS failure, timeout).
	MsgBackendUnreachable = "Unable to connect to server. Please check that the backend is running."

	// MsgSessionExpired is shown for a 401 response. The local session has
	// already been torn down when this message is displayed.
	MsgSessionExpired = "Unauthorized. Please log in again."

	// MsgInvalidRequest is shown for a 400 response without server text.
	MsgInvalidRequest = "Invalid request. Please check your input."

	// MsgNotFound is shown for a 404 response without server text.
	MsgNotFound = "Requested resource not found."

	// MsgServerError is shown for any 5xx response without server text.
	MsgServerError = "Server error. Please try again later."

	// MsgUnexpectedResponse is shown when a 2xx body cannot be decoded.
	MsgUnexpectedResponse = "Unexpected response from server."

	// MsgMalformedAuthResponse is shown when login or signup reported success
	// but did not return both a token and a user.
	MsgMalformedAuthResponse = "Authentication response was incomplete. Please try again."
)
