package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/citymart/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *domain.Error
		expected string
	}{
		{
			name:     "message only",
			err:      &domain.Error{Code: domain.EINVALID, Message: "quantity must be greater than 0"},
			expected: "quantity must be greater than 0",
		},
		{
			name:     "op and message",
			err:      &domain.Error{Code: domain.ENOTFOUND, Op: "catalog.get", Message: "product not found: p-1"},
			expected: "catalog.get: product not found: p-1",
		},
		{
			name: "op, message and wrapped error",
			err: &domain.Error{
				Code:    domain.EINTERNAL,
				Op:      "cart.save",
				Message: "failed to persist cart",
				Err:     errors.New("connection refused"),
			},
			expected: "cart.save: failed to persist cart: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", domain.ErrorCode(nil), "nil error has no code")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(domain.ErrProductNotFound))
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(errors.New("plain error")),
		"non-domain errors default to internal")

	wrapped := fmt.Errorf("outer: %w", domain.Invalid("cart.add_item", "bad quantity"))
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(wrapped),
		"code is extracted through wrapping")
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Product not found", domain.ErrorMessage(domain.ErrProductNotFound))

	internal := domain.Internal(errors.New("disk full"), "cart.save", "failed to persist cart")
	assert.Equal(t, "An internal error occurred. Please try again later.", domain.ErrorMessage(internal),
		"internal errors hide details from users")

	assert.Equal(t, "An internal error occurred. Please try again later.", domain.ErrorMessage(errors.New("oops")),
		"unknown error types hide details from users")
}

func TestValidationError(t *testing.T) {
	err := domain.NewValidationError("checkout.address", "email", "must be a valid email address")

	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, map[string]string{"email": "must be a valid email address"}, domain.GetValidationFields(err))
	assert.Equal(t, "checkout.address: email: must be a valid email address", err.Error())

	assert.False(t, domain.IsValidationError(domain.ErrCartNotFound))
	assert.Nil(t, domain.GetValidationFields(errors.New("plain")))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("redis: connection pool timeout")
	err := domain.Internal(cause, "cart.load", "failed to load cart")

	assert.True(t, errors.Is(err, cause), "Internal preserves the cause for errors.Is")
}
