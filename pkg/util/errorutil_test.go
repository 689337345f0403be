package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	t.Parallel()

	err := NewForbidden("Permission denied.")
	wrapped := fmt.Errorf("decide: %w", err)

	domainErr := ToDomainError(wrapped)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
}

func TestToDomainError_MapsNoRowsToNotFound(t *testing.T) {
	t.Parallel()

	domainErr := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	t.Parallel()

	domainErr := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "internal server error", domainErr.Message)
}

func TestStatusCodesPerTaxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{NewValidationError("bad", nil), http.StatusBadRequest, "VALIDATION_FAILED"},
		{NewUnauthorized("nope"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewForbidden("nope"), http.StatusForbidden, "FORBIDDEN"},
		{NewNotFound("user", nil), http.StatusNotFound, "NOT_FOUND"},
		{NewInvalidState("done", nil), http.StatusConflict, "INVALID_STATE"},
	}

	for _, tc := range tests {
		domainErr := ToDomainError(tc.err)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
		assert.Equal(t, tc.code, domainErr.Code)
	}
}
