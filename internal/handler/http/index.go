package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Bienvenue"}, http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: "OK"}, http.StatusOK)
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusUnauthorized)
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusForbidden)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusNotFound)
}
