package cli

import (
	"fmt"

	"github.com/bobhenl/trivago-auth-main/internal/client/password"
)

// emailEntryScreen is the entry point of the flow: it discovers whether
// the address has an account and lets the controller route to login or
// register accordingly.
func (a *App) emailEntryScreen() error {
	fmt.Fprintln(a.out, "\nLog in or create an account")
	fmt.Fprintf(a.out, "Continue with Google: %s\n", a.flow.GoogleAuthURL())
	a.showAlert()

	input, err := getSimpleText(a.reader, "Enter email ('forgot' to reset a password, 'quit' to exit)", a.out)
	if err != nil {
		return err
	}

	switch input {
	case "":
		return nil
	case "quit", "exit":
		return errQuit
	case "forgot":
		a.flow.EnterForgotPassword()
		return nil
	case "dismiss":
		a.flow.Guard().ClearAlert()
		return nil
	}

	// On failure the alert is set and shown on the next render.
	a.flow.SubmitEmail(input)
	return nil
}

// loginScreen asks for the password of the discovered email. An empty
// password opens the navigation options instead of submitting.
func (a *App) loginScreen() error {
	email, ok := a.flow.Email()
	if !ok {
		a.flow.EnterLogin() // redirects to the entry screen
		return nil
	}

	fmt.Fprintf(a.out, "\nLog in as %s\n", email)
	a.showAlert()

	pw, err := getPassword("Enter password (leave empty for options)", a.out)
	if err != nil {
		return err
	}
	if pw == "" {
		return a.loginOptions()
	}

	a.flow.SubmitLogin(pw)
	return nil
}

func (a *App) loginOptions() error {
	choice, err := getSimpleText(a.reader, "Options: 'back', 'forgot', 'quit' (Enter to stay)", a.out)
	if err != nil {
		return err
	}
	switch choice {
	case "back":
		a.flow.EnterEmailEntry()
	case "forgot":
		a.flow.EnterForgotPassword()
	case "quit", "exit":
		return errQuit
	}
	return nil
}

// registerScreen creates an account for the discovered email. The strength
// meter is reported for every entered password; a weak one is rejected by
// the controller before any network call.
func (a *App) registerScreen() error {
	email, ok := a.flow.Email()
	if !ok {
		a.flow.EnterRegister() // redirects to the entry screen
		return nil
	}

	fmt.Fprintf(a.out, "\nCreate an account for %s\n", email)
	a.showAlert()

	pw, err := getPassword("Create password (leave empty for options)", a.out)
	if err != nil {
		return err
	}
	if pw == "" {
		return a.registerOptions()
	}

	a.printStrength(pw)
	a.flow.SubmitRegister(pw)
	return nil
}

func (a *App) registerOptions() error {
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

// printStrength reports the level and the completion fractions of the
// strength policy for the entered password.
func (a *App) printStrength(pw string) {
	r := password.Check(pw)
	fmt.Fprintf(a.out, "Password strength: %s (characters %d/%d, uppercase %d/%d)\n",
		r.Strength, r.Length, password.MinLength, r.UppercaseCount, password.MinUppercase)
}
