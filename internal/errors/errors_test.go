package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "catalog"}
		assert.Equal(t, "catalog not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "catalog"}
		err2 := &NotFoundError{Entity: "catalog"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "catalog"}
		err2 := &NotFoundError{Entity: "event"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCatalogNotFound, ErrCatalogNotFound))
		assert.False(t, errors.Is(ErrCatalogNotFound, ErrCatalogEventNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTenantNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrCatalogNotFound)))
		assert.False(t, IsNotFound(ErrTenantHasUsers))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "catalog subscription", Context: "for this organization"}
		assert.Equal(t, "catalog subscription already exists for this organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "catalog subscription"}
		assert.Equal(t, "catalog subscription already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrEventSubscriptionExists))
		assert.False(t, IsAlreadyExists(ErrCatalogNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_date", Message: "invalid format"}
		assert.Equal(t, "validation error: start_date - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidMonth))
		assert.True(t, IsValidation(NewValidationError("tags", "invalid")))
		assert.False(t, IsValidation(ErrNoOrganization))
	})
}

func TestAggregationError(t *testing.T) {
	storeErr := errors.New("connection refused")
	err := NewAggregationError("fetch catalog events", storeErr)

	assert.Equal(t, "calendar aggregation failed: fetch catalog events: connection refused", err.Error())
	assert.True(t, IsAggregation(err))
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, IsValidation(err))
	assert.False(t, IsAuthorization(err))
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrNoOrganization, ErrInvalidMonth, NewAggregationError("resolve", errors.New("boom"))}

	assert.True(t, IsAuthorization(kinds[0]))
	assert.False(t, IsAuthorization(kinds[1]))
	assert.False(t, IsAuthorization(kinds[2]))

	assert.True(t, IsValidation(kinds[1]))
	assert.False(t, IsValidation(kinds[0]))
	assert.False(t, IsValidation(kinds[2]))

	assert.True(t, IsAggregation(kinds[2]))
	assert.False(t, IsAggregation(kinds[0]))
	assert.False(t, IsAggregation(kinds[1]))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.Equal(t, "nope", err.Error())
		assert.True(t, IsAuthorization(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		assert.True(t, IsAuthentication(NewAuthenticationError("bad token")))
		assert.True(t, IsAuthentication(ErrInvalidToken))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("missing secret")))
	})
}
