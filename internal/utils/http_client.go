// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// The underlying client keeps a cookie jar, so a session cookie set by one
// response is sent with every following request to the same host.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:5000", 15*time.Second)
//	resp, err := client.R().Get("/api/v1/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose requests
// are resolved against baseURL. A baseURL without scheme gets "http://".
// A non-positive timeout leaves resty's default (no timeout).
//
// Redirects are not followed so callers can observe 3xx responses.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, cookie jar and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(withScheme(baseURL)).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func withScheme(address string) string {
	if address == "" || strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address
	}
	return "http://" + address
}
