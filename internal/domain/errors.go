// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")

	// User-related errors
	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)

	// Affiliate-related errors
	ErrAffiliateNotFound = fmt.Errorf("affiliate %w", ErrNotFound)

	// Role-related errors
	ErrRoleNotFound           = fmt.Errorf("role %w", ErrNotFound)
	ErrRoleAssignmentNotFound = fmt.Errorf("role assignment %w", ErrNotFound)
	ErrRoleNotAssignable      = errors.New("role has child roles and cannot be assigned")

	// Officer-related errors
	ErrPositionNotFound = fmt.Errorf("officer position %w", ErrNotFound)
	ErrOfficerNotFound  = fmt.Errorf("officer assignment %w", ErrNotFound)
	ErrOfficerNotActive = errors.New("officer assignment already ended")

	// Domain blocklist errors
	ErrDomainNotFound = fmt.Errorf("domain %w", ErrNotFound)
	ErrDomainExists   = fmt.Errorf("domain already exists: %w", ErrConflict)
	ErrDomainBlocked  = errors.New("email domain is blocked")

	// Document errors
	ErrDocumentNotFound = fmt.Errorf("document %w", ErrNotFound)
	ErrFileRequired     = errors.New("file is required")

	// Audit errors
	ErrActivityLogNotFound = fmt.Errorf("activity log %w", ErrNotFound)
	ErrImmutableAuditLog   = errors.New("activity logs are append-only")
)

// ValidationError carries field-level messages for rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Add records a message for field and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
	return e
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldError builds a single-field validation error.
func FieldError(field, message string) error {
	return (&ValidationError{}).Add(field, message)
}

// NewValidationError converts validator output into a ValidationError.
// Errors that did not come from the validator are wrapped as-is.
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Add(fieldName(fe), messageFor(fe))
	}
	return ve
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		name = fe.StructField()
	}
	return name
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "excluded_with", "isdefault":
		return "is not allowed"
	default:
		return "is invalid"
	}
}
