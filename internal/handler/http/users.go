package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials := models.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Register(ctx, credentials.Email, credentials.Password)
	if errors.Is(err, service.ErrConflict) {
		log.Err(err).Msg("email already registered")
		utils.WriteJSON(w, models.MessageResponse{Message: "email already registered"}, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Email: user.Email, Message: "user created"}, http.StatusOK)
}

// me returns the authenticated user. Without a user set by the access gate
// it falls back to the session cookie.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
