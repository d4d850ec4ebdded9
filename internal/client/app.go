package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/adapter"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
	"github.com/sethvargo/go-retry"
)

const (
	readyMaxRetries = 5
	readyBaseDelay  = 200 * time.Millisecond
)

// ErrUnexpectedOutcome is returned when a step gets an answer other than the
// one it expects.
var ErrUnexpectedOutcome = errors.New("unexpected outcome")

// Scenario holds the account data the smoke run uses.
type Scenario struct {
	Email       string `env:"SMOKE_EMAIL" envDefault:"guillaume@holberton.io"`
	Password    string `env:"SMOKE_PASSWORD" envDefault:"b4l0u"`
	NewPassword string `env:"SMOKE_NEW_PASSWORD" envDefault:"t4rt1fl3tt3"`
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// App runs the smoke scenario against the API behind api.
type App struct {
	api      adapter.APIClient
	scenario Scenario

	// state shared between steps
	sessionID  string
	resetToken string

	logger *logger.Logger
}

// NewApp returns an App that replays scenario through api.
func NewApp(api adapter.APIClient, scenario Scenario, logger *logger.Logger) *App {
	return &App{api: api, scenario: scenario, logger: logger}
}

// Run waits for the server to answer its health check, then executes every
// step in order. It stops at the first failing step.
func (a *App) Run(ctx context.Context) error {
	if err := a.waitReady(ctx); err != nil {
		return fmt.Errorf("server is not ready: %w", err)
	}

	for _, s := range a.steps() {
		if err := s.run(ctx); err != nil {
			a.logger.Err(err).Str("step", s.name).Msg("step failed")
			return fmt.Errorf("%s: %w", s.name, err)
		}
		a.logger.Info().Str("step", s.name).Msg("ok")
	}

	return nil
}

func (a *App) waitReady(ctx context.Context) error {
	backoff := retry.WithMaxRetries(readyMaxRetries, retry.NewFibonacci(readyBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		status, err := a.api.Status(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.waitReady").Msg("server is not ready, retrying")
			return retry.RetryableError(err)
		}
		if status.Status != "OK" {
			return retry.RetryableError(fmt.Errorf("%w: status %q", ErrUnexpectedOutcome, status.Status))
		}
		return nil
	})
}

func (a *App) steps() []step {
	return []step{
		{"register user", a.registerUser},
		{"log in with wrong password", a.logInWrongPassword},
		{"profile without session", a.profileUnlogged},
		{"log in", a.logIn},
		{"profile with session", a.profileLogged},
		{"log out", a.logOut},
		{"profile with dead session", a.profileDeadSession},
		{"get reset password token", a.getResetPasswordToken},
		{"update password", a.updatePassword},
		{"log in with new password", a.logInNewPassword},
	}
}

func (a *App) registerUser(ctx context.Context) error {
	msg, err := a.api.Register(ctx, models.Credentials{Email: a.scenario.Email, Password: a.scenario.Password})
	if err != nil {
		return err
	}
	if msg.Email != a.scenario.Email {
		return fmt.Errorf("%w: registered %q", ErrUnexpectedOutcome, msg.Email)
	}
	return nil
}

func (a *App) logInWrongPassword(ctx context.Context) error {
	_, err := a.api.Login(ctx, models.Credentials{Email: a.scenario.Email, Password: a.scenario.Password + "?"})
	return expect(err, adapter.ErrUnauthorized)
}

// profileUnlogged accepts 403 from the handler and 401 from an access gate.
func (a *App) profileUnlogged(ctx context.Context) error {
	_, err := a.api.Profile(ctx)
	return expect(err, adapter.ErrForbidden, adapter.ErrUnauthorized)
}

func (a *App) logIn(ctx context.Context) error {
	if _, err := a.api.Login(ctx, models.Credentials{Email: a.scenario.Email, Password: a.scenario.Password}); err != nil {
		return err
	}
	a.sessionID = a.api.SessionID()
	return nil
}

func (a *App) profileLogged(ctx context.Context) error {
	profile, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	if profile.Email != a.scenario.Email {
		return fmt.Errorf("%w: profile of %q", ErrUnexpectedOutcome, profile.Email)
	}
	return nil
}

func (a *App) logOut(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	if a.api.SessionID() != "" {
		return fmt.Errorf("%w: session cookie kept after logout", ErrUnexpectedOutcome)
	}
	return nil
}

// profileDeadSession replays the cookie from before logout.
func (a *App) profileDeadSession(ctx context.Context) error {
	a.api.SetSessionID(a.sessionID)
	defer a.api.SetSessionID("")

	_, err := a.api.Profile(ctx)
	return expect(err, adapter.ErrForbidden, adapter.ErrUnauthorized)
}

func (a *App) getResetPasswordToken(ctx context.Context) error {
	resp, err := a.api.ResetToken(ctx, a.scenario.Email)
	if err != nil {
		return err
	}
	if resp.ResetToken == "" {
		return fmt.Errorf("%w: empty reset token", ErrUnexpectedOutcome)
	}
	a.resetToken = resp.ResetToken
	return nil
}

func (a *App) updatePassword(ctx context.Context) error {
	_, err := a.api.UpdatePassword(ctx, models.PasswordUpdateRequest{
		Email:       a.scenario.Email,
		ResetToken:  a.resetToken,
		NewPassword: a.scenario.NewPassword,
	})
	return err
}

func (a *App) logInNewPassword(ctx context.Context) error {
	_, err := a.api.Login(ctx, models.Credentials{Email: a.scenario.Email, Password: a.scenario.NewPassword})
	return err
}

// expect returns nil when err matches one of wanted.
func expect(err error, wanted ...error) error {
	if err == nil {
		return fmt.Errorf("%w: request succeeded, wanted %v", ErrUnexpectedOutcome, wanted)
	}
	for _, w := range wanted {
		if errors.Is(err, w) {
			return nil
		}
	}
	return fmt.Errorf("%w: %w", ErrUnexpectedOutcome, err)
}
