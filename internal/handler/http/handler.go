package http

import (
	"time"

	"github.com/MKhiriev/go-session-auth/internal/auth"
	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
)

type Handler struct {
	services *service.Services

	// strategy guards every route; nil disables the access gate.
	strategy      auth.Strategy
	excludedPaths []string

	// cookieName is the session cookie written on login and read on logout.
	cookieName     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, strategy auth.Strategy, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	cookieName := cfg.Auth.SessionName
	if cookieName == "" {
		cookieName = config.DefaultSessionName
	}

	logger.Info().Str("auth_type", cfg.Auth.Type).Msg("http handler created")
	return &Handler{
		services:       services,
		strategy:       strategy,
		excludedPaths:  cfg.Auth.ExcludedPaths,
		cookieName:     cookieName,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
