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
	Context string // Additional context like "for this tenant"
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

// AuthorizationError represents authorization and tenancy errors
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

// AggregationError reports a store failure while resolving subscriptions or
// fetching events. No partial result accompanies it.
type AggregationError struct {
	Op  string
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("calendar aggregation failed: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying store error
func (e *AggregationError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrTenantNotFound              = &NotFoundError{Entity: "organization"}
	ErrUserNotFound                = &NotFoundError{Entity: "user"}
	ErrCatalogNotFound             = &NotFoundError{Entity: "catalog"}
	ErrCatalogEventNotFound        = &NotFoundError{Entity: "event"}
	ErrOrganizationEventNotFound   = &NotFoundError{Entity: "organization event"}
	ErrCatalogSubscriptionNotFound = &NotFoundError{Entity: "subscription"}
	ErrEventSubscriptionNotFound   = &NotFoundError{Entity: "event subscription"}
)

// Already Exists Errors
var (
	ErrTenantExists              = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrCatalogSubscriptionExists = &AlreadyExistsError{Entity: "catalog subscription", Context: "for this organization"}
	ErrEventSubscriptionExists   = &AlreadyExistsError{Entity: "event subscription", Context: "for this organization"}
)

// Business Logic Errors
var (
	ErrCatalogInactive        = &ValidationError{Field: "catalog_id", Message: "cannot subscribe to an inactive catalog"}
	ErrEventNotInCatalog      = &ValidationError{Field: "event_id", Message: "event does not belong to this catalog"}
	ErrInvalidMonth           = &ValidationError{Field: "month", Message: "invalid year or month"}
	ErrInvalidTimeRange       = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}
	ErrInvalidRecurrenceRule  = &ValidationError{Field: "recurrence_rule", Message: "invalid recurrence rule"}
	ErrTenantHasUsers         = errors.New("cannot delete an organization that still has users")
	ErrInvalidPaginationParam = errors.New("invalid pagination parameters")
)

// Authorization Errors
var (
	ErrNoOrganization       = &AuthorizationError{Message: "you must belong to an organization to view the calendar"}
	ErrCrossTenantAccess    = &AuthorizationError{Message: "you cannot access data from another organization"}
	ErrInsufficientRole     = &AuthorizationError{Message: "you do not have permission to access this resource"}
	ErrSubscriptionNotOwned = &AuthorizationError{Message: "this subscription does not belong to your organization"}
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsAggregation checks if an error is an AggregationError
func IsAggregation(err error) bool {
	var aggErr *AggregationError
	return errors.As(err, &aggErr)
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

// NewAggregationError wraps a store failure raised during the named operation
func NewAggregationError(op string, err error) error {
	return &AggregationError{Op: op, Err: err}
}
