// Package api speaks the identity service's HTTP contract: JSON request and
// response bodies, the session credential carried by a cookie the service
// sets on login, and a `msg` field on every failure body.
package api

import (
	"context"

	"github.com/bobhenl/trivago-auth-main/internal/client/models"
)

// Client is the remote identity service as seen by the flow controller.
type Client interface {
	// CheckEmail reports whether an account exists for the address.
	CheckEmail(ctx context.Context, email string) (bool, error)

	// Login authenticates the account; on success the service sets the
	// session cookie on the underlying HTTP client.
	Login(ctx context.Context, email, password string) error

	// Register creates a new account with the given credentials.
	Register(ctx context.Context, email, password string) error

	// RequestReset asks the service to email a single-use reset link.
	RequestReset(ctx context.Context, email string) error

	// ChangePassword consumes a reset token and sets a new password.
	ChangePassword(ctx context.Context, token, newPassword string) error

	// Logout invalidates the server-side session.
	Logout(ctx context.Context) error

	// GetProfile fetches the authenticated account.
	GetProfile(ctx context.Context) (models.Profile, error)

	// GoogleAuthURL returns the address that starts the Google OAuth flow.
	GoogleAuthURL() string
}
