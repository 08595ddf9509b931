package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidEmail      = errors.New("please enter a valid email")
	ErrEmptyPassword     = errors.New("password is required")
	ErrShortPassword     = errors.New("password must be at least 6 characters")
	ErrShortFirstName    = errors.New("first name must be at least 2 characters")
	ErrShortLastName     = errors.New("last name must be at least 2 characters")
	ErrEmptyQuestion     = errors.New("question is required")
	ErrLongQuestion      = errors.New("question must be at most 1000 characters")
	ErrInvalidMilestone  = errors.New("invalid milestone type")
	ErrInvalidPagination = errors.New("page and limit must not be negative")
)
