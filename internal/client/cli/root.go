package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bobhenl/trivago-auth-main/internal/client/flow"
)

// errQuit signals that the visitor asked to leave.
var errQuit = errors.New("quit")

// Run renders whichever screen the flow controller says is active, until
// the visitor quits, input ends, or ctx is cancelled. Submission failures
// never end the loop; they surface as alerts on the next render.
func (a *App) Run(ctx context.Context) {
	defer a.flow.Shutdown()

	fmt.Fprintln(a.out, "Welcome! Let's get you signed in.")

	if a.config.ResetLink != "" {
		a.flow.EnterChangePassword(a.config.ResetLink)
	}

	for {
		if ctx.Err() != nil {
			return
		}

		var err error
		switch a.flow.State() {
		case flow.StateEmailEntry:
			err = a.emailEntryScreen()
		case flow.StateLogin:
			err = a.loginScreen()
		case flow.StateRegister:
			err = a.registerScreen()
		case flow.StateForgotPassword:
			err = a.forgotPasswordScreen()
		case flow.StateCheckYourEmail:
			err = a.checkYourEmailScreen()
		case flow.StateChangePassword:
			err = a.changePasswordScreen()
		case flow.StateAuthenticated:
			err = a.homeScreen()
		}

		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
		if err != nil {
			a.log.Error(ctx, "input error", "screen", a.flow.State(), "error", err)
			return
		}
	}
}

// showAlert prints the active screen's alert, if any. The alert stays up
// until the next submission attempt clears it, like the web banner it
// mirrors.
func (a *App) showAlert() {
	if msg := a.flow.Guard().Alert(); msg != "" {
		fmt.Fprintf(a.out, "! %s\n", msg)
	}
}
