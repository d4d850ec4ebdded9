package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-session-auth/internal/auth"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrInvalidInput, want: http.StatusBadRequest},
		{err: service.ErrConflict, want: http.StatusBadRequest},
		{err: service.ErrAuthenticationFailed, want: http.StatusUnauthorized},
		{err: service.ErrUnauthenticated, want: http.StatusUnauthorized},
		{err: service.ErrForbidden, want: http.StatusForbidden},
		{err: service.ErrUnknownUser, want: http.StatusForbidden},
		{err: service.ErrInvalidToken, want: http.StatusForbidden},
		{err: fmt.Errorf("wrapped: %w", service.ErrForbidden), want: http.StatusForbidden},
		{err: fmt.Errorf("%w: no credentials for /api/v1/profile", service.ErrUnauthenticated), want: http.StatusUnauthorized},
		{err: fmt.Errorf("%w: %w", service.ErrForbidden, auth.ErrNoIdentity), want: http.StatusForbidden},
		{err: fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("boom")), want: http.StatusInternalServerError},
		{err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
