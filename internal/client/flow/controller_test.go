package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobhenl/trivago-auth-main/internal/client/api"
	"github.com/bobhenl/trivago-auth-main/internal/client/models"
	"github.com/bobhenl/trivago-auth-main/internal/client/session"
	"github.com/bobhenl/trivago-auth-main/internal/common"
	"github.com/bobhenl/trivago-auth-main/internal/logging"
)

// fakeClient implements api.Client for controller tests. Last* fields
// capture arguments, *Calls count invocations.
type fakeClient struct {
	CheckEmailExists bool
	CheckEmailErr    error
	CheckEmailCalls  int
	LastCheckEmail   string
	onCheckEmail     func()

	LoginErr          error
	LoginCalls        int
	LastLoginEmail    string
	LastLoginPassword string

	RegisterErr          error
	RegisterCalls        int
	LastRegisterEmail    string
	LastRegisterPassword string

	ResetErr       error
	ResetCalls     int
	LastResetEmail string

	ChangeErr          error
	ChangeCalls        int
	LastChangeToken    string
	LastChangePassword string

	LogoutErr   error
	LogoutCalls int

	ProfileRet   models.Profile
	ProfileErr   error
	ProfileCalls int
}

func (f *fakeClient) CheckEmail(_ context.Context, email string) (bool, error) {
	f.CheckEmailCalls++
	f.LastCheckEmail = email
	if f.onCheckEmail != nil {
		f.onCheckEmail()
	}
	return f.CheckEmailExists, f.CheckEmailErr
}

func (f *fakeClient) Login(_ context.Context, email, pw string) error {
	f.LoginCalls++
	f.LastLoginEmail, f.LastLoginPassword = email, pw
	return f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, email, pw string) error {
	f.RegisterCalls++
	f.LastRegisterEmail, f.LastRegisterPassword = email, pw
	return f.RegisterErr
}

func (f *fakeClient) RequestReset(_ context.Context, email string) error {
	f.ResetCalls++
	f.LastResetEmail = email
	return f.ResetErr
}

func (f *fakeClient) ChangePassword(_ context.Context, token, pw string) error {
	f.ChangeCalls++
	f.LastChangeToken, f.LastChangePassword = token, pw
	return f.ChangeErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) GetProfile(context.Context) (models.Profile, error) {
	f.ProfileCalls++
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) GoogleAuthURL() string {
	return "https://id.example.org/auth/google"
}

func newTestController(f *fakeClient) (*Controller, *session.MemoryStore) {
	store := session.NewMemoryStore()
	return NewController(context.Background(), f, store, logging.NewDiscard()), store
}

// ---- email entry ----

func TestSubmitEmail_UnknownAddressRoutesToRegister(t *testing.T) {
	f := &fakeClient{CheckEmailExists: false}
	c, store := newTestController(f)

	state, err := c.SubmitEmail("new@example.org")
	require.NoError(t, err)

	assert.Equal(t, StateRegister, state)
	assert.Equal(t, "new@example.org", f.LastCheckEmail)

	email, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "new@example.org", email)
}

func TestSubmitEmail_KnownAddressRoutesToLogin(t *testing.T) {
	f := &fakeClient{CheckEmailExists: true}
	c, store := newTestController(f)

	state, err := c.SubmitEmail("alice@example.org")
	require.NoError(t, err)

	assert.Equal(t, StateLogin, state)
	email, _ := store.Get()
	assert.Equal(t, "alice@example.org", email)
}

func TestSubmitEmail_ServerErrorStaysOnEntry(t *testing.T) {
	f := &fakeClient{CheckEmailErr: &api.Error{Status: 400, Msg: "Invalid email format"}}
	c, store := newTestController(f)

	state, err := c.SubmitEmail("not-an-email")
	require.Error(t, err)

	assert.Equal(t, StateEmailEntry, state)
	assert.Equal(t, "Invalid email format", c.Guard().Alert())
	_, ok := store.Get()
	assert.False(t, ok, "a failed check must not store the email")
}

func TestSubmitEmail_TransportErrorUsesFallbackAlert(t *testing.T) {
	f := &fakeClient{CheckEmailErr: api.ErrUnavailable}
	c, _ := newTestController(f)

	state, err := c.SubmitEmail("alice@example.org")
	require.Error(t, err)

	assert.Equal(t, StateEmailEntry, state)
	assert.Equal(t, common.FallbackErrorMessage, c.Guard().Alert())
}

// ---- screen preconditions ----

func TestEnterLogin_WithoutEmailRedirectsSilently(t *testing.T) {
	c, _ := newTestController(&fakeClient{})

	state := c.EnterLogin()

	assert.Equal(t, StateEmailEntry, state)
	assert.Empty(t, c.Guard().Alert(), "wrong navigation is not a user-facing error")
}

func TestEnterRegister_WithoutEmailRedirectsSilently(t *testing.T) {
	c, _ := newTestController(&fakeClient{})

	state := c.EnterRegister()

	assert.Equal(t, StateEmailEntry, state)
	assert.Empty(t, c.Guard().Alert())
}

func TestEnterLogin_WithEmail(t *testing.T) {
	c, store := newTestController(&fakeClient{})
	store.Set("alice@example.org")

	assert.Equal(t, StateLogin, c.EnterLogin())
}

// ---- login ----

func TestSubmitLogin_Success(t *testing.T) {
	f := &fakeClient{CheckEmailExists: true}
	c, _ := newTestController(f)
	_, err := c.SubmitEmail("alice@example.org")
	require.NoError(t, err)

	state, err := c.SubmitLogin("Abcdefgh12")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, "alice@example.org", f.LastLoginEmail)
	assert.Equal(t, "Abcdefgh12", f.LastLoginPassword)
}

func TestSubmitLogin_FailureStaysWithAlertAndIdleForm(t *testing.T) {
	f := &fakeClient{
		CheckEmailExists: true,
		LoginErr:         &api.Error{Status: 401, Msg: "Incorrect email or password"},
	}
	c, _ := newTestController(f)
	_, err := c.SubmitEmail("alice@example.org")
	require.NoError(t, err)

	state, err := c.SubmitLogin("wrong")
	require.Error(t, err)

	assert.Equal(t, StateLogin, state)
	assert.Equal(t, "Incorrect email or password", c.Guard().Alert())
	assert.False(t, c.Guard().InFlight(), "form must be re-enabled after failure")
}

func TestSubmitLogin_WithoutEmailRedirects(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)

	state, err := c.SubmitLogin("whatever")
	require.NoError(t, err)

	assert.Equal(t, StateEmailEntry, state)
	assert.Zero(t, f.LoginCalls)
}

// ---- register ----

func TestSubmitRegister_WeakPasswordRejectedLocally(t *testing.T) {
	f := &fakeClient{CheckEmailExists: false}
	c, _ := newTestController(f)
	_, err := c.SubmitEmail("new@example.org")
	require.NoError(t, err)

	state, err := c.SubmitRegister("weak1")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, common.WeakPasswordMessage, verr.Msg)
	assert.Equal(t, common.WeakPasswordMessage, c.Guard().Alert())
	assert.Equal(t, StateRegister, state)
	assert.Zero(t, f.RegisterCalls, "weak password must not reach the network")
}

func TestSubmitRegister_Success(t *testing.T) {
	f := &fakeClient{CheckEmailExists: false}
	c, _ := newTestController(f)
	_, err := c.SubmitEmail("new@example.org")
	require.NoError(t, err)

	state, err := c.SubmitRegister("Abcdefgh12")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, "new@example.org", f.LastRegisterEmail)
	assert.Equal(t, "Abcdefgh12", f.LastRegisterPassword)
}

func TestSubmitRegister_ServerErrorSurfaced(t *testing.T) {
	f := &fakeClient{
		CheckEmailExists: false,
		RegisterErr:      &api.Error{Status: 409, Msg: "Email already registered"},
	}
	c, _ := newTestController(f)
	_, err := c.SubmitEmail("new@example.org")
	require.NoError(t, err)

	state, err := c.SubmitRegister("Abcdefgh12")
	require.Error(t, err)

	assert.Equal(t, StateRegister, state)
	assert.Equal(t, "Email already registered", c.Guard().Alert())
}

// ---- forgot password ----

func TestEnterForgotPassword_PrefillsStoredEmail(t *testing.T) {
	c, store := newTestController(&fakeClient{})
	store.Set("alice@example.org")

	state, prefill := c.EnterForgotPassword()

	assert.Equal(t, StateForgotPassword, state)
	assert.Equal(t, "alice@example.org", prefill)
}

func TestEnterForgotPassword_NoEmailIsAllowed(t *testing.T) {
	c, _ := newTestController(&fakeClient{})

	state, prefill := c.EnterForgotPassword()

	assert.Equal(t, StateForgotPassword, state)
	assert.Empty(t, prefill)
}

func TestSubmitReset_TransitionsToCheckYourEmail(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)
	c.EnterForgotPassword()

	state, err := c.SubmitReset("alice@example.org")
	require.NoError(t, err)

	assert.Equal(t, StateCheckYourEmail, state)
	assert.Equal(t, "alice@example.org", f.LastResetEmail)
}

func TestResend_ReinvokesWithoutSecondTransition(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)
	c.EnterForgotPassword()

	_, err := c.SubmitReset("alice@example.org")
	require.NoError(t, err)

	state, err := c.Resend()
	require.NoError(t, err)

	assert.Equal(t, StateCheckYourEmail, state)
	assert.Equal(t, 2, f.ResetCalls)
	assert.Equal(t, "alice@example.org", f.LastResetEmail, "resend must reuse the same email")
}

func TestSubmitReset_FailureStaysOnForgot(t *testing.T) {
	f := &fakeClient{ResetErr: &api.Error{Status: 404, Msg: "No account for this email"}}
	c, _ := newTestController(f)
	c.EnterForgotPassword()

	state, err := c.SubmitReset("nobody@example.org")
	require.Error(t, err)

	assert.Equal(t, StateForgotPassword, state)
	assert.Equal(t, "No account for this email", c.Guard().Alert())
}

// ---- change password ----

func TestEnterChangePassword_ExtractsTokenFromLink(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)

	state := c.EnterChangePassword("https://host.example/change-password/tok-abc123")
	assert.Equal(t, StateChangePassword, state)

	_, err := c.SubmitNewPassword("GoodPass12", "GoodPass12")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", f.LastChangeToken)
	assert.Equal(t, "GoodPass12", f.LastChangePassword)
}

func TestSubmitNewPassword_MismatchRejectedLocally(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)
	c.EnterChangePassword("https://host.example/change-password/tok")

	state, err := c.SubmitNewPassword("GoodPass12", "GoodPass13")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, common.PasswordMismatchMessage, verr.Msg)
	assert.Equal(t, FieldConfirm, verr.Focus, "focus must move to the confirmation field")
	assert.Equal(t, StateChangePassword, state)
	assert.Zero(t, f.ChangeCalls)
}

func TestSubmitNewPassword_EmptyOrWeakRejectedBeforeMismatch(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)
	c.EnterChangePassword("https://host.example/change-password/tok")

	// Empty password, mismatching confirm: the strength message wins.
	_, err := c.SubmitNewPassword("", "something")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, common.WeakPasswordMessage, verr.Msg)

	_, err = c.SubmitNewPassword("weak1", "weak1")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, common.WeakPasswordMessage, verr.Msg)
	assert.Zero(t, f.ChangeCalls)
}

func TestSubmitNewPassword_SuccessNavigatesHome(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)
	c.EnterChangePassword("https://host.example/change-password/tok")

	state, err := c.SubmitNewPassword("GoodPass12", "GoodPass12")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, 1, f.ChangeCalls)
}

// ---- home ----

func TestCompleteAuthentication_FetchesProfileAndClearsEmail(t *testing.T) {
	f := &fakeClient{
		CheckEmailExists: true,
		ProfileRet: models.Profile{
			ID: "42", Email: "alice@example.org", CreatedAt: "2023-06-01T10:00:00Z",
		},
	}
	c, store := newTestController(f)
	_, err := c.SubmitEmail("alice@example.org")
	require.NoError(t, err)
	_, err = c.SubmitLogin("Abcdefgh12")
	require.NoError(t, err)

	p, err := c.CompleteAuthentication()
	require.NoError(t, err)

	assert.Equal(t, "alice@example.org", p.Email)
	_, ok := store.Get()
	assert.False(t, ok, "landing on home must clear the email handoff")
}

func TestCompleteAuthentication_FailureStaysOnHome(t *testing.T) {
	f := &fakeClient{CheckEmailExists: true, ProfileErr: &api.Error{Status: 401, Msg: "Not logged in"}}
	c, _ := newTestController(f)
	_, err := c.SubmitEmail("alice@example.org")
	require.NoError(t, err)
	_, err = c.SubmitLogin("Abcdefgh12")
	require.NoError(t, err)

	_, err = c.CompleteAuthentication()
	require.Error(t, err)

	assert.Equal(t, StateAuthenticated, c.State())
	assert.Equal(t, "Not logged in", c.Guard().Alert())
}

func TestLogout_RestartsFlow(t *testing.T) {
	f := &fakeClient{CheckEmailExists: true}
	c, store := newTestController(f)
	_, err := c.SubmitEmail("alice@example.org")
	require.NoError(t, err)
	_, err = c.SubmitLogin("Abcdefgh12")
	require.NoError(t, err)

	state, err := c.Logout()
	require.NoError(t, err)

	assert.Equal(t, StateEmailEntry, state)
	assert.Equal(t, 1, f.LogoutCalls)
	_, ok := store.Get()
	assert.False(t, ok)
}

// ---- cancellation on navigation ----

func TestSubmitEmail_AbandonedWhenScreenTornDownMidFlight(t *testing.T) {
	f := &fakeClient{CheckEmailExists: true}
	c, store := newTestController(f)

	// The visitor navigates away while the check is pending.
	f.onCheckEmail = func() { c.EnterForgotPassword() }

	state, err := c.SubmitEmail("alice@example.org")
	require.Error(t, err)

	assert.Equal(t, StateForgotPassword, state, "the late result must not override navigation")
	_, ok := store.Get()
	assert.False(t, ok, "an abandoned submission must not store the email")
}

func TestShutdown_CancelsScreenContext(t *testing.T) {
	f := &fakeClient{}
	c, _ := newTestController(f)

	c.Shutdown()

	state, err := c.SubmitEmail("alice@example.org")
	require.Error(t, err)
	assert.Equal(t, StateEmailEntry, state)
}
