// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/auth"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials := models.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, sessionID, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.MessageResponse{Email: user.Email, Message: "logged in"}, http.StatusOK)
}

// logout destroys the session named by the cookie and redirects to "/".
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := auth.SessionCookie(r, h.cookieName)

	if err := h.services.AuthService.Logout(r.Context(), sessionID); err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Email: user.Email}, http.StatusOK)
}

// currentUser returns the user stored by the access gate, or resolves the
// session cookie when the gate did not run.
func (h *Handler) currentUser(r *http.Request) (models.User, error) {
	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		return user, nil
	}

	sessionID, _ := auth.SessionCookie(r, h.cookieName)
	return h.services.AuthService.UserFromSession(r.Context(), sessionID)
}
