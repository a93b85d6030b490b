package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bobhenl/trivago-auth-main/internal/client/flow"
)

// forgotPasswordScreen asks the service to email a reset link. The stored
// email, when present, is offered as a prefill; it is not required here.
func (a *App) forgotPasswordScreen() error {
	fmt.Fprintln(a.out, "\nReset your password")
	a.showAlert()

	prompt := "Enter email ('back' to return, 'quit' to exit)"
	prefill, _ := a.flow.Email()
	if prefill != "" {
		prompt = fmt.Sprintf("Enter email (Enter for %s, 'back' to return, 'quit' to exit)", prefill)
	}

	input, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	switch input {
	case "":
		if prefill == "" {
			return nil
		}
		input = prefill
	case "back":
		a.flow.EnterLogin()
		return nil
	case "quit", "exit":
		return errQuit
	}

	a.flow.SubmitReset(input)
	return nil
}

// checkYourEmailScreen confirms the reset request. Resending re-invokes
// the same request; pasting the emailed link continues to the
// change-password screen, the terminal stand-in for clicking it.
func (a *App) checkYourEmailScreen() error {
	fmt.Fprintln(a.out, "\nCheck your email")
	fmt.Fprintf(a.out, "We sent a password reset link to %s\n", a.flow.ResetEmail())
	a.showAlert()

	choice, err := getSimpleText(a.reader, "Options: 'resend', 'link <reset link>', 'back', 'quit'", a.out)
	if err != nil {
		return err
	}

	switch {
	case choice == "resend":
		a.flow.Resend()
	case strings.HasPrefix(choice, "link "):
		a.flow.EnterChangePassword(strings.TrimSpace(strings.TrimPrefix(choice, "link ")))
	case choice == "back":
		a.flow.EnterLogin()
	case choice == "quit", choice == "exit":
		return errQuit
	}
	return nil
}

// changePasswordScreen consumes the reset token. A mismatching
// confirmation keeps the accepted password and re-prompts only the
// confirmation field.
func (a *App) changePasswordScreen() error {
	fmt.Fprintln(a.out, "\nChoose a new password")
	a.showAlert()

	pw, err := getPassword("New password (leave empty for options)", a.out)
	if err != nil {
		return err
	}
	if pw == "" {
		choice, err := getSimpleText(a.reader, "Options: 'back', 'quit' (Enter to stay)", a.out)
		if err != nil {
			return err
		}
		switch choice {
		case "back":
			a.flow.EnterEmailEntry()
		case "quit", "exit":
			return errQuit
		}
		return nil
	}

	a.printStrength(pw)

	confirm, err := getPassword("Retype new password", a.out)
	if err != nil {
		return err
	}

	_, serr := a.flow.SubmitNewPassword(pw, confirm)

	var verr *flow.ValidationError
	for errors.As(serr, &verr) && verr.Focus == flow.FieldConfirm {
		fmt.Fprintf(a.out, "! %s\n", verr.Msg)
		confirm, err = getPassword("Retype new password", a.out)
		if err != nil {
			return err
		}
		_, serr = a.flow.SubmitNewPassword(pw, confirm)
	}
	return nil
}
