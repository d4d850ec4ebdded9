// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/auth"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// gate is the access gate applied to every request before routing.
//
// With no strategy configured, or for a path the strategy does not require
// authentication on, the request passes untouched. Otherwise:
//   - missing credentials answer 401 Unauthorized;
//   - credentials that do not resolve to a user answer 403 Forbidden;
//   - lookup failures answer 500.
//
// On success the resolved user is stored in the request context under
// [utils.UserCtxKey].
func (h *Handler) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.strategy == nil || !h.strategy.RequiresAuth(r.URL.Path, h.excludedPaths) {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := h.strategy.ExtractCredentials(r); !ok {
			writeError(w, r, fmt.Errorf("%w: no credentials for %s", service.ErrUnauthenticated, r.URL.Path))
			return
		}

		user, err := h.strategy.CurrentIdentity(r)
		switch {
		case errors.Is(err, auth.ErrNoIdentity):
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrForbidden, err))
			return
		case err != nil:
			writeError(w, r, fmt.Errorf("error resolving identity: %w", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}
