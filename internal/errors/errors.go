package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidStateError represents a workflow invariant violation, e.g. a team
// that already holds a title or a title locked by existing submissions.
// It maps to 400 at the HTTP layer.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrTargetTeamNotFound = &NotFoundError{Entity: "target team"}
	ErrMemberNotFound     = &NotFoundError{Entity: "member"}
	ErrTitleNotFound      = &NotFoundError{Entity: "title"}
	ErrSubmissionNotFound = &NotFoundError{Entity: "submission"}
)

// Already Exists Errors
var (
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrSubmissionExists = &AlreadyExistsError{Entity: "submission", Context: "for this team pair"}
)

// Authorization Errors
var (
	ErrNotTeamLeaderTitle   = &AuthorizationError{Message: "Only team leader can create title"}
	ErrNotTitleOwner        = &AuthorizationError{Message: "Only title owner can update the title"}
	ErrNotTeamLeaderSubmit  = &AuthorizationError{Message: "Only team leader can create submissions"}
	ErrNotTeamLeaderRespond = &AuthorizationError{Message: "Only team leader can respond to submissions"}
	ErrCannotKickMember     = &AuthorizationError{Message: "You cannot kick this member"}
	ErrAdminRequired        = &AuthorizationError{Message: "Admin privileges required"}
)

// Workflow State Errors
var (
	ErrUserHasTeam        = &InvalidStateError{Message: "User already has a team"}
	ErrUserHasNoTeam      = &InvalidStateError{Message: "User does not belong to a team"}
	ErrTeamHasTitle       = &InvalidStateError{Message: "Team already has a title"}
	ErrTargetHasNoTitle   = &InvalidStateError{Message: "Target team has no title"}
	ErrTitleLocked        = &InvalidStateError{Message: "Cannot update title after submission"}
	ErrTitleTaken         = &InvalidStateError{Message: "Title already taken"}
	ErrSelfSubmission     = &InvalidStateError{Message: "Cannot submit to your own team"}
	ErrTargetNotEligible  = &InvalidStateError{Message: "Submissions are limited to previous-period titles"}
	ErrSubmissionResolved = &InvalidStateError{Message: "Submission has already been responded to"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "Invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "Invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}
