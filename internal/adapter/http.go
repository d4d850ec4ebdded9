package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

const (
	statusPath        = "/api/v1/status"
	usersPath         = "/api/v1/users"
	mePath            = "/api/v1/users/me"
	sessionsPath      = "/api/v1/sessions"
	profilePath       = "/api/v1/profile"
	resetPasswordPath = "/api/v1/reset_password"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	baseURL    *url.URL
	cookieName string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. cookieName is the name of the session cookie the server
// issues; an empty name falls back to [config.DefaultSessionName].
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIClient(cfg config.Adapter, cookieName string, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cookieName == "" {
		cookieName = config.DefaultSessionName
	}

	return &httpAPIClient{
		client:     utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL:    parsed,
		cookieName: cookieName,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Status implements [APIClient]. GET /api/v1/status.
func (h *httpAPIClient) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get(statusPath)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}

// Register implements [APIClient]. It POSTs the credentials as form fields to
// POST /api/v1/users.
func (h *httpAPIClient) Register(ctx context.Context, credentials models.Credentials) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(credentialsForm(credentials)).
		SetResult(&msg).
		Post(usersPath)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	h.logger.Debug().Str("email", credentials.Email).Msg("registered")
	return msg, nil
}

// Login implements [APIClient]. It POSTs the credentials as form fields to
// POST /api/v1/sessions. The session cookie of the response is kept in the
// client's cookie jar.
func (h *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(credentialsForm(credentials)).
		SetResult(&msg).
		Post(sessionsPath)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}
	if h.SessionID() == "" {
		return models.MessageResponse{}, fmt.Errorf("login: response carried no %q cookie", h.cookieName)
	}

	return msg, nil
}

// Profile implements [APIClient]. GET /api/v1/profile.
func (h *httpAPIClient) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profile).
		Get(profilePath)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// Me implements [APIClient]. GET /api/v1/users/me.
func (h *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get(mePath)
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Logout implements [APIClient]. DELETE /api/v1/sessions. The server answers
// 302 to "/" and expires the cookie, which removes it from the jar.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(sessionsPath)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if resp.StatusCode() == http.StatusFound {
		return nil
	}

	return mapHTTPError(resp)
}

// ResetToken implements [APIClient]. POST /api/v1/reset_password.
func (h *httpAPIClient) ResetToken(ctx context.Context, email string) (models.ResetTokenResponse, error) {
	var token models.ResetTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"email": email}).
		SetResult(&token).
		Post(resetPasswordPath)
	if err != nil {
		return models.ResetTokenResponse{}, fmt.Errorf("reset token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResetTokenResponse{}, err
	}

	return token, nil
}

// UpdatePassword implements [APIClient]. PUT /api/v1/reset_password.
func (h *httpAPIClient) UpdatePassword(ctx context.Context, req models.PasswordUpdateRequest) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":        req.Email,
			"reset_token":  req.ResetToken,
			"new_password": req.NewPassword,
		}).
		SetResult(&msg).
		Put(resetPasswordPath)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("update password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// SessionID implements [APIClient].
func (h *httpAPIClient) SessionID() string {
	jar := h.client.GetClient().Jar
	if jar == nil {
		return ""
	}
	for _, c := range jar.Cookies(h.baseURL) {
		if c.Name == h.cookieName {
			return c.Value
		}
	}
	return ""
}

// SetSessionID implements [APIClient].
func (h *httpAPIClient) SetSessionID(id string) {
	jar := h.client.GetClient().Jar
	if jar == nil {
		return
	}

	cookie := &http.Cookie{Name: h.cookieName, Value: id, Path: "/"}
	if id == "" {
		cookie.MaxAge = -1
	}
	jar.SetCookies(h.baseURL, []*http.Cookie{cookie})
}

func credentialsForm(c models.Credentials) map[string]string {
	return map[string]string{"email": c.Email, "password": c.Password}
}
