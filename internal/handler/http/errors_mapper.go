package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:         http.StatusBadRequest,
	service.ErrConflict:             http.StatusBadRequest,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrForbidden:            http.StatusForbidden,
	service.ErrUnknownUser:          http.StatusForbidden,
	service.ErrInvalidToken:         http.StatusForbidden,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a generic body.
// Error details are logged, never sent.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("unexpected error")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Send()
	}

	writeStatus(w, r, status)
}

// writeStatus writes {"error": "<status text>"} with the given status.
func writeStatus(w http.ResponseWriter, r *http.Request, status int) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: statusMessage(status)}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeStatus").Msg("error writing response")
	}
}

func statusMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Not found"
	default:
		return http.StatusText(status)
	}
}
