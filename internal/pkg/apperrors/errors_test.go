package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Not found", ErrRideNotFound, http.StatusNotFound},
		{"Request not found", ErrRequestNotFound, http.StatusNotFound},
		{"Conflict - ride full", ErrRideFull, http.StatusConflict},
		{"Conflict - duplicate", ErrDuplicateRequest, http.StatusConflict},
		{"Conflict - self request", ErrSelfRequest, http.StatusConflict},
		{"Conflict - already accepted", ErrAlreadyAccepted, http.StatusConflict},
		{"Conflict - not accepted", ErrNotAccepted, http.StatusConflict},
		{"Forbidden - not driver", ErrNotRideDriver, http.StatusForbidden},
		{"Forbidden - not owner", ErrNotRideOwner, http.StatusForbidden},
		{"Unauthorized", ErrInvalidCredentials, http.StatusUnauthorized},
		{"Invalid input", InvalidInput("source path is required"), http.StatusBadRequest},
		{"Infrastructure error", errors.New("connection refused"), http.StatusInternalServerError},
		{"Nil-adjacent wrapped error", fmt.Errorf("query: %w", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusCode(tc.err))
		})
	}
}

func TestStatusCode_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("accept request: %w", ErrRideFull)
	assert.Equal(t, http.StatusConflict, StatusCode(wrapped))
	assert.True(t, IsDomain(wrapped))
}

func TestIsDomain(t *testing.T) {
	assert.True(t, IsDomain(ErrRideNotFound))
	assert.False(t, IsDomain(errors.New("plain")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "this ride has no available seats", ErrRideFull.Error())
	assert.Equal(t, "total_seats must be > 0", InvalidInput("total_seats must be > 0").Error())
}
