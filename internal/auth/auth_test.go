package auth

import (
	"testing"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		authType string
		want     any
	}{
		{authType: "", want: nil},
		{authType: "none", want: &NoAuth{}},
		{authType: "auth", want: &NoAuth{}},
		{authType: "basic", want: &BasicAuth{}},
		{authType: "basic_auth", want: &BasicAuth{}},
		{authType: "session", want: &SessionAuth{}},
		{authType: "session_auth", want: &SessionAuth{}},
		{authType: "session_exp_auth", want: &SessionAuth{}},
		{authType: "session_db_auth", want: &SessionAuth{}},
	}

	for _, tt := range tests {
		t.Run("type="+tt.authType, func(t *testing.T) {
			got, err := New(config.Auth{Type: tt.authType}, nil, nil, nil)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestNew_SessionCookieName(t *testing.T) {
	got, err := New(config.Auth{Type: "session", SessionName: "sid"}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "sid", got.(*SessionAuth).CookieName())

	got, err = New(config.Auth{Type: "session"}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSessionName, got.(*SessionAuth).CookieName())
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(config.Auth{Type: "oauth"}, nil, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
