package errors

import (
	"errors"
	"fmt"
	"strings"
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
	Context string // Additional context like "for this template"
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

// ValidationError represents a single validation issue. Field is the dotted
// JSON path of the offending value ("data.publicTitle", "recipients.1.email");
// it is empty for issues on the payload as a whole.
type ValidationError struct {
	Field   string `json:"path"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is the full set of issues found in one payload.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, issue := range e {
		if issue.Field != "" {
			parts = append(parts, issue.Field+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an issue for the given path.
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, &ValidationError{Field: field, Message: message})
}

// HasPrefix reports whether any issue sits at path or below it.
func (e ValidationErrors) HasPrefix(path string) bool {
	for _, issue := range e {
		if issue.Field == path || strings.HasPrefix(issue.Field, path+".") {
			return true
		}
	}
	return false
}

// For returns the issues recorded at exactly path.
func (e ValidationErrors) For(path string) ValidationErrors {
	var out ValidationErrors
	for _, issue := range e {
		if issue.Field == path {
			out = append(out, issue)
		}
	}
	return out
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

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTemplateNotFound           = &NotFoundError{Entity: "template"}
	ErrTemplateDirectLinkNotFound = &NotFoundError{Entity: "template direct link"}
	ErrTemplateRecipientNotFound  = &NotFoundError{Entity: "template recipient"}
	ErrDocumentNotFound           = &NotFoundError{Entity: "document"}
)

// Already Exists Errors
var (
	ErrTemplateDirectLinkExists = &AlreadyExistsError{Entity: "template direct link", Context: "for this template"}
)

// Business Logic Errors
var (
	ErrUnknownOperation        = errors.New("unknown template operation")
	ErrTemplateModified        = errors.New("template has been modified since the direct link was opened")
	ErrDirectLinkDisabled      = errors.New("template direct link is disabled")
	ErrTemplateAlreadyInTeam   = errors.New("template already belongs to this team")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrMissingAuthorization = &AuthenticationError{Message: "Authorization header is required"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or a ValidationErrors set
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// AsValidationErrors extracts the issue list from err. A lone ValidationError
// is returned as a one-element list.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs, true
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ValidationErrors{validationErr}, true
	}
	return nil, false
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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
