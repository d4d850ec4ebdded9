package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiresAuth(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{name: "exact match with slash", path: "/api/v1/status/", excluded: []string{"/api/v1/status/"}, want: false},
		{name: "path without slash", path: "/api/v1/status", excluded: []string{"/api/v1/status/"}, want: false},
		{name: "entry without slash", path: "/api/v1/status/", excluded: []string{"/api/v1/status"}, want: false},
		{name: "empty exclusion list", path: "/api/v1/users/1", excluded: []string{}, want: true},
		{name: "nil exclusion list", path: "/api/v1/users/1", excluded: nil, want: true},
		{name: "empty path", path: "", excluded: []string{"/"}, want: true},
		{name: "not excluded", path: "/api/v1/users/1", excluded: []string{"/api/v1/status/"}, want: true},
		{name: "child of exact entry", path: "/api/v1/status/extra", excluded: []string{"/api/v1/status/"}, want: true},
		{name: "wildcard prefix", path: "/api/v1/stat/anything", excluded: []string{"/api/v1/stat/*"}, want: false},
		{name: "wildcard matches bare prefix", path: "/api/v1/stat", excluded: []string{"/api/v1/stat/*"}, want: false},
		{name: "wildcard without slash", path: "/api/v1/status", excluded: []string{"/api/v1/stat*"}, want: false},
		{name: "wildcard miss", path: "/api/v1/users", excluded: []string{"/api/v1/stat/*"}, want: true},
		{name: "root excluded only root", path: "/api/v1/profile", excluded: []string{"/"}, want: true},
		{name: "root", path: "/", excluded: []string{"/"}, want: false},
		{name: "empty entry ignored", path: "/x", excluded: []string{""}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresAuth(tt.path, tt.excluded))
		})
	}
}

func TestStrategies_ShareRequiresAuth(t *testing.T) {
	excluded := []string{"/api/v1/status/"}
	for _, s := range []Strategy{NewNoAuth(), NewBasicAuth(nil, nil), NewSessionAuth("sid", nil, nil)} {
		assert.False(t, s.RequiresAuth("/api/v1/status", excluded))
		assert.True(t, s.RequiresAuth("/api/v1/profile", excluded))
	}
}
