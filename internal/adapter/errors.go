package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/career-dashboard/internal/app"
)

// Kind classifies a failed request.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnectivity
	KindValidation
	KindAuth
	KindNotFound
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Kind sentinels. errors.Is(err, ErrUnauthorized) is true for any
// [*APIError] of KindAuth, and so on.
var (
	ErrConnectivity = errors.New("backend unreachable")
	ErrValidation   = errors.New("invalid request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("resource not found")
	ErrServer       = errors.New("server error")
	ErrUnknown      = errors.New("unknown error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindConnectivity:
		return ErrConnectivity
	case KindValidation:
		return ErrValidation
	case KindAuth:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	default:
		return ErrUnknown
	}
}

// APIError is the normalized failure of a dispatched request. Message is
// always suitable for display.
type APIError struct {
	Kind    Kind
	Message string
	// Status is the HTTP status code, or 0 when no response was received.
	Status int
	Cause  error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func (e *APIError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NewValidationError builds a KindValidation error for failures detected on
// the client side, e.g. a success response missing required fields.
func NewValidationError(message string, cause error) *APIError {
	return &APIError{Kind: KindValidation, Message: message, Cause: cause}
}

// AsAPIError unwraps err into an [*APIError]. Errors of any other type are
// reported as KindUnknown with a generic message.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: KindUnknown, Message: app.MsgGeneric, Cause: err}
}

// Message returns the display text of err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return AsAPIError(err).Message
}

// NewUnexpectedResponseError builds a KindUnknown error for a 2xx response
// whose payload is missing or unusable.
func NewUnexpectedResponseError(cause error) *APIError {
	return &APIError{Kind: KindUnknown, Message: app.MsgUnexpectedResponse, Cause: cause}
}
