// Package form implements the submission discipline every form shares:
// at most one in-flight submission per form, an alert message lifecycle,
// and a guaranteed return to idle on every exit path.
package form

import (
	"context"
	"errors"

	"github.com/bobhenl/trivago-auth-main/internal/client/api"
	"github.com/bobhenl/trivago-auth-main/internal/common"
)

// ErrInFlight is returned when a submission starts while another one for
// the same form has not settled yet.
var ErrInFlight = errors.New("submission already in flight")

// Guard wraps one form instance's network action. The zero value is ready
// to use.
type Guard struct {
	inFlight bool
	alert    string
}

// Submit runs action under the form discipline:
//
//   - a second submission while one is in flight is rejected, not queued;
//   - any existing alert is cleared before the action starts;
//   - the in-flight flag is reset on every exit path;
//   - a failure carrying a server message surfaces it verbatim as the
//     alert, any other failure surfaces the generic fallback;
//   - if ctx was cancelled (the screen was torn down mid-flight) the
//     outcome is abandoned: no alert is written.
//
// The action's error is returned unchanged so callers can branch on it.
func (g *Guard) Submit(ctx context.Context, action func(context.Context) error) error {
	if g.inFlight {
		return ErrInFlight
	}
	g.alert = ""
	g.inFlight = true
	defer func() { g.inFlight = false }()

	err := action(ctx)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return err
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Msg != "" {
		g.alert = apiErr.Msg
	} else {
		g.alert = common.FallbackErrorMessage
	}
	return err
}

// InFlight reports whether a submission is pending. The form's inputs and
// submit control are inert while it returns true.
func (g *Guard) InFlight() bool {
	return g.inFlight
}

// Alert returns the current alert message, empty when there is none.
func (g *Guard) Alert() string {
	return g.alert
}

// SetAlert surfaces a locally produced validation message.
func (g *Guard) SetAlert(msg string) {
	g.alert = msg
}

// ClearAlert dismisses the alert explicitly.
func (g *Guard) ClearAlert() {
	g.alert = ""
}
