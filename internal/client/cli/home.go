package cli

import (
	"fmt"
)

// homeScreen displays the authenticated account. The profile is fetched on
// every render, so a failed fetch is retried simply by staying here.
func (a *App) homeScreen() error {
	p, err := a.flow.CompleteAuthentication()
	if err != nil {
		a.showAlert()
		choice, cerr := getSimpleText(a.reader, "Options: 'retry', 'logout', 'quit'", a.out)
		if cerr != nil {
			return cerr
		}
		switch choice {
		case "logout":
			a.flow.Logout()
		case "quit", "exit":
			return errQuit
		}
		return nil
	}

	fmt.Fprintln(a.out, "\nYou are logged in.")
	fmt.Fprintf(a.out, "Account ID:   %s\n", p.ID)
	fmt.Fprintf(a.out, "Email:        %s\n", p.Email)
	fmt.Fprintf(a.out, "Member since: %s\n", p.CreatedAt)

	choice, err := getSimpleText(a.reader, "Options: 'logout', 'quit'", a.out)
	if err != nil {
		return err
	}
	switch choice {
	case "logout":
		a.flow.Logout()
		return nil
	case "quit", "exit":
		return errQuit
	}
	return nil
}
