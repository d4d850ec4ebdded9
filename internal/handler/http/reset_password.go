package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

func (h *Handler) issueResetToken(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")

	token, err := h.services.PasswordResetService.IssueToken(r.Context(), email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ResetTokenResponse{Email: email, ResetToken: token}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	req := models.PasswordUpdateRequest{
		Email:       r.PostFormValue("email"),
		ResetToken:  r.PostFormValue("reset_token"),
		NewPassword: r.PostFormValue("new_password"),
	}
	if req.Email == "" {
		writeError(w, r, service.ErrInvalidInput)
		return
	}

	if err := h.services.PasswordResetService.Redeem(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Email: req.Email, Message: "Password updated"}, http.StatusOK)
}
