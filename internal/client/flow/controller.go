// Package flow implements the authentication flow as an explicit state
// machine. The controller decides which screen is active, guards the
// transitions between screens, and owns the per-screen submission
// lifecycle; rendering and input belong to the caller.
package flow

import (
	"context"

	"github.com/bobhenl/trivago-auth-main/internal/client/api"
	"github.com/bobhenl/trivago-auth-main/internal/client/form"
	"github.com/bobhenl/trivago-auth-main/internal/client/models"
	"github.com/bobhenl/trivago-auth-main/internal/client/password"
	"github.com/bobhenl/trivago-auth-main/internal/client/session"
	"github.com/bobhenl/trivago-auth-main/internal/common"
	"github.com/bobhenl/trivago-auth-main/internal/logging"
)

// Controller drives the visitor through email discovery, login,
// registration, and password reset. Each screen gets a fresh submission
// guard and a context that is cancelled when the visitor navigates away,
// so a submission that settles after its screen was torn down is
// abandoned rather than written into the next screen's state.
//
// The controller is not safe for concurrent use; all calls happen on the
// single interaction goroutine.
type Controller struct {
	api    api.Client
	emails session.Store
	log    logging.Logger

	state State
	guard *form.Guard

	base       context.Context
	screenCtx  context.Context
	cancel     context.CancelFunc
	resetEmail string
	resetToken string
}

// NewController starts the flow on the email-entry screen. ctx bounds the
// whole session; cancelling it cancels any in-flight submission.
func NewController(ctx context.Context, apiClient api.Client, emails session.Store, log logging.Logger) *Controller {
	c := &Controller{
		api:    apiClient,
		emails: emails,
		log:    log,
		base:   ctx,
		state:  StateEmailEntry,
	}
	c.screenCtx, c.cancel = context.WithCancel(ctx)
	c.guard = &form.Guard{}
	return c
}

// State returns the active screen.
func (c *Controller) State() State {
	return c.state
}

// Guard returns the active screen's submission guard. The caller reads the
// alert and in-flight flag from it and may dismiss the alert.
func (c *Controller) Guard() *form.Guard {
	return c.guard
}

// Email returns the session email handoff, if present.
func (c *Controller) Email() (string, bool) {
	return c.emails.Get()
}

// GoogleAuthURL returns the address starting the Google OAuth flow.
func (c *Controller) GoogleAuthURL() string {
	return c.api.GoogleAuthURL()
}

// enter tears the current screen down and activates s: the old screen's
// context is cancelled and the new screen gets a fresh guard.
func (c *Controller) enter(s State) {
	c.log.Info(c.base, "navigate", "from", c.state, "to", s)
	c.cancel()
	c.screenCtx, c.cancel = context.WithCancel(c.base)
	c.state = s
	c.guard = &form.Guard{}
}

// Shutdown cancels any in-flight submission. Call once when the session ends.
func (c *Controller) Shutdown() {
	c.cancel()
}

// SubmitEmail asks the service whether the address has an account, stores
// the address for the following screen, and routes to Login when the
// account exists or Register when it does not. On failure the flow stays
// on the entry screen with the alert set.
func (c *Controller) SubmitEmail(email string) (State, error) {
	guard, screen := c.guard, c.screenCtx

	var exists bool
	err := guard.Submit(screen, func(ctx context.Context) error {
		var err error
		exists, err = c.api.CheckEmail(ctx, email)
		return err
	})
	if err != nil {
		return c.state, err
	}
	if screen.Err() != nil {
		return c.state, screen.Err()
	}

	c.emails.Set(email)
	if exists {
		c.enter(StateLogin)
	} else {
		c.enter(StateRegister)
	}
	return c.state, nil
}

// EnterLogin activates the login screen. Without a discovered email this
// is wrong navigation: the visitor is redirected to the entry screen with
// no alert.
func (c *Controller) EnterLogin() State {
	if _, ok := c.emails.Get(); !ok {
		c.enter(StateEmailEntry)
		return c.state
	}
	c.enter(StateLogin)
	return c.state
}

// EnterRegister activates the register screen under the same precondition
// as EnterLogin.
func (c *Controller) EnterRegister() State {
	if _, ok := c.emails.Get(); !ok {
		c.enter(StateEmailEntry)
		return c.state
	}
	c.enter(StateRegister)
	return c.state
}

// EnterEmailEntry navigates back to the entry screen.
func (c *Controller) EnterEmailEntry() State {
	c.enter(StateEmailEntry)
	return c.state
}

// SubmitLogin authenticates with the stored email and the given password.
// Success transitions to Authenticated; failure stays on the login screen
// with the alert set and the form re-enabled.
func (c *Controller) SubmitLogin(pw string) (State, error) {
	email, ok := c.emails.Get()
	if !ok {
		c.enter(StateEmailEntry)
		return c.state, nil
	}
	guard, screen := c.guard, c.screenCtx

	err := guard.Submit(screen, func(ctx context.Context) error {
		return c.api.Login(ctx, email, pw)
	})
	if err != nil {
		return c.state, err
	}
	if screen.Err() != nil {
		return c.state, screen.Err()
	}

	c.enter(StateAuthenticated)
	return c.state, nil
}

// SubmitRegister creates an account with the stored email. A weak password
// is rejected locally with the fixed policy message and no network call.
func (c *Controller) SubmitRegister(pw string) (State, error) {
	email, ok := c.emails.Get()
	if !ok {
		c.enter(StateEmailEntry)
		return c.state, nil
	}

	if password.Evaluate(pw) == password.Weak {
		verr := &ValidationError{Msg: common.WeakPasswordMessage, Focus: FieldPassword}
		c.guard.SetAlert(verr.Msg)
		return c.state, verr
	}

	guard, screen := c.guard, c.screenCtx
	err := guard.Submit(screen, func(ctx context.Context) error {
		return c.api.Register(ctx, email, pw)
	})
	if err != nil {
		return c.state, err
	}
	if screen.Err() != nil {
		return c.state, screen.Err()
	}

	c.enter(StateAuthenticated)
	return c.state, nil
}

// EnterForgotPassword activates the reset-request screen and returns the
// stored email as a prefill. The email is optional here.
func (c *Controller) EnterForgotPassword() (State, string) {
	prefill, _ := c.emails.Get()
	c.enter(StateForgotPassword)
	return c.state, prefill
}

// SubmitReset asks the service to send a reset link. The first success
// transitions to CheckYourEmail; submitting again from there re-invokes
// the same request without a further transition.
func (c *Controller) SubmitReset(email string) (State, error) {
	c.resetEmail = email
	guard, screen := c.guard, c.screenCtx

	err := guard.Submit(screen, func(ctx context.Context) error {
		return c.api.RequestReset(ctx, email)
	})
	if err != nil {
		return c.state, err
	}
	if screen.Err() != nil {
		return c.state, screen.Err()
	}

	if c.state != StateCheckYourEmail {
		c.enter(StateCheckYourEmail)
	}
	return c.state, nil
}

// Resend re-invokes the reset request with the email of the previous
// submission.
func (c *Controller) Resend() (State, error) {
	return c.SubmitReset(c.resetEmail)
}

// ResetEmail returns the address the last reset request was sent to.
func (c *Controller) ResetEmail() string {
	return c.resetEmail
}

// EnterChangePassword activates the change-password screen for the token
// embedded in the emailed link. The flow is reachable only this way.
func (c *Controller) EnterChangePassword(link string) State {
	c.resetToken = TokenFromLink(link)
	c.enter(StateChangePassword)
	return c.state
}

// SubmitNewPassword consumes the reset token. Validation order: first the
// strength policy (empty or weak is rejected with the policy message),
// then the confirmation match (rejected with the mismatch message and a
// focus intent on the confirmation field). Only when both pass is the
// network called.
func (c *Controller) SubmitNewPassword(pw, confirm string) (State, error) {
	if lvl := password.Evaluate(pw); lvl == password.Empty || lvl == password.Weak {
		verr := &ValidationError{Msg: common.WeakPasswordMessage, Focus: FieldPassword}
		c.guard.SetAlert(verr.Msg)
		return c.state, verr
	}
	if pw != confirm {
		verr := &ValidationError{Msg: common.PasswordMismatchMessage, Focus: FieldConfirm}
		c.guard.SetAlert(verr.Msg)
		return c.state, verr
	}

	guard, screen := c.guard, c.screenCtx
	token := c.resetToken
	err := guard.Submit(screen, func(ctx context.Context) error {
		return c.api.ChangePassword(ctx, token, pw)
	})
	if err != nil {
		return c.state, err
	}
	if screen.Err() != nil {
		return c.state, screen.Err()
	}

	c.enter(StateAuthenticated)
	return c.state, nil
}

// CompleteAuthentication belongs to the home screen: it clears the session
// email handoff and fetches the profile to display. A failure stays on the
// home screen with the alert set; the visitor may retry manually.
func (c *Controller) CompleteAuthentication() (models.Profile, error) {
	c.emails.Clear()

	guard, screen := c.guard, c.screenCtx
	var p models.Profile
	err := guard.Submit(screen, func(ctx context.Context) error {
		var err error
		p, err = c.api.GetProfile(ctx)
		return err
	})
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Logout invalidates the server-side session and restarts the flow on the
// entry screen with all session state cleared.
func (c *Controller) Logout() (State, error) {
	guard, screen := c.guard, c.screenCtx
	err := guard.Submit(screen, func(ctx context.Context) error {
		return c.api.Logout(ctx)
	})
	if err != nil {
		return c.state, err
	}

	c.emails.Clear()
	c.enter(StateEmailEntry)
	return c.state, nil
}
