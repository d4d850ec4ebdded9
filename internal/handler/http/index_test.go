package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticEndpoints(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{name: "index", handler: h.index, wantStatus: http.StatusOK, wantBody: `{"message":"Bienvenue"}`},
		{name: "status", handler: h.status, wantStatus: http.StatusOK, wantBody: `{"status":"OK"}`},
		{name: "unauthorized", handler: h.unauthorized, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Unauthorized"}`},
		{name: "forbidden", handler: h.forbidden, wantStatus: http.StatusForbidden, wantBody: `{"error":"Forbidden"}`},
		{name: "not found", handler: h.notFound, wantStatus: http.StatusNotFound, wantBody: `{"error":"Not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
