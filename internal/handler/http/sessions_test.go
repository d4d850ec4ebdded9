// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, string, error) {
			assert.Equal(t, "bob@me.com", email)
			assert.Equal(t, "pwd", password)
			return models.User{ID: "u-1", Email: email}, "s-1", nil
		},
	}
	h := newHandlerWithServices(t, auth, nil)
	rec := httptest.NewRecorder()

	h.login(rec, formRequest(http.MethodPost, "/api/v1/sessions", url.Values{"email": {"bob@me.com"}, "password": {"pwd"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"bob@me.com","message":"logged in"}`, rec.Body.String())

	cookie := findCookie(rec, "session_id")
	require.NotNil(t, cookie, "session cookie must be set")
	assert.Equal(t, "s-1", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "wrong credentials", err: service.ErrAuthenticationFailed, wantStatus: http.StatusUnauthorized},
		{name: "missing fields", err: service.ErrInvalidInput, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(context.Context, string, string) (models.User, string, error) {
					return models.User{}, "", tt.err
				},
			}
			h := newHandlerWithServices(t, auth, nil)
			rec := httptest.NewRecorder()

			h.login(rec, formRequest(http.MethodPost, "/api/v1/sessions", url.Values{"email": {"bob@me.com"}}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Nil(t, findCookie(rec, "session_id"))
		})
	}
}

func TestLogout(t *testing.T) {
	t.Run("success redirects to index", func(t *testing.T) {
		auth := &mockAuthService{
			logoutFn: func(_ context.Context, sessionID string) error {
				assert.Equal(t, "s-1", sessionID)
				return nil
			},
		}
		h := newHandlerWithServices(t, auth, nil)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "s-1"})
		rec := httptest.NewRecorder()

		h.logout(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		cookie := findCookie(rec, "session_id")
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("unknown session", func(t *testing.T) {
		auth := &mockAuthService{
			logoutFn: func(context.Context, string) error { return service.ErrForbidden },
		}
		h := newHandlerWithServices(t, auth, nil)
		rec := httptest.NewRecorder()

		h.logout(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())
	})
}

func TestProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := &mockAuthService{
			userFromSessionFn: func(context.Context, string) (models.User, error) {
				return models.User{ID: "u-1", Email: "bob@me.com"}, nil
			},
		}
		h := newHandlerWithServices(t, auth, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "s-1"})
		rec := httptest.NewRecorder()

		h.profile(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"bob@me.com"}`, rec.Body.String())
	})

	t.Run("stale session", func(t *testing.T) {
		auth := &mockAuthService{
			userFromSessionFn: func(context.Context, string) (models.User, error) {
				return models.User{}, service.ErrForbidden
			},
		}
		h := newHandlerWithServices(t, auth, nil)
		rec := httptest.NewRecorder()

		h.profile(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
