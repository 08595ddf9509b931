package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/career-dashboard/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldQuestion  = "question"
	FieldType      = "type"
	FieldPaging    = "paging"
)

const (
	minPasswordLength = 6
	minNameLength     = 2
	maxQuestionLength = 1000
)

var allowedMilestoneTypes = []models.MilestoneType{
	models.MilestoneEducation,
	models.MilestoneJob,
	models.MilestoneCertification,
	models.MilestoneAchievement,
	models.MilestoneProject,
}

// FormValidator validates the requests built by the login, signup, Q&A and
// timeline views.
//
// A bare AuthRequest is checked as a login (email and password); pass the
// name fields explicitly, or use [SignupFields], to check a signup.
type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// SignupFields is the full field set of a signup request.
var SignupFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AuthRequest:
		return v.validateAuthRequest(ctx, value, fields...)
	case *models.AuthRequest:
		return v.validateAuthRequest(ctx, *value, fields...)

	case models.QnaRequest:
		return v.validateQnaRequest(ctx, value, fields...)
	case *models.QnaRequest:
		return v.validateQnaRequest(ctx, *value, fields...)

	case models.MilestoneFilter:
		return v.validateMilestoneFilter(ctx, value, fields...)
	case *models.MilestoneFilter:
		return v.validateMilestoneFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateAuthRequest(_ context.Context, req models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(req.Password) < minPasswordLength {
				return ErrShortPassword
			}
		case FieldFirstName:
			if utf8.RuneCountInString(strings.TrimSpace(req.FirstName)) < minNameLength {
				return ErrShortFirstName
			}
		case FieldLastName:
			if utf8.RuneCountInString(strings.TrimSpace(req.LastName)) < minNameLength {
				return ErrShortLastName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	// ParseAddress also accepts "Name <addr>"; only a bare address is allowed.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

func (v *FormValidator) validateQnaRequest(_ context.Context, req models.QnaRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			question := strings.TrimSpace(req.Question)
			if question == "" {
				return ErrEmptyQuestion
			}
			if utf8.RuneCountInString(question) > maxQuestionLength {
				return ErrLongQuestion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateMilestoneFilter(_ context.Context, filter models.MilestoneFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldPaging}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if filter.Type != "" && !isValidMilestoneType(filter.Type) {
				return ErrInvalidMilestone
			}
		case FieldPaging:
			if filter.Page < 0 || filter.Limit < 0 {
				return ErrInvalidPagination
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidMilestoneType(t models.MilestoneType) bool {
	for _, allowed := range allowedMilestoneTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
