package flow

// State names the screen the visitor is on. Authenticated is terminal for
// the flow; everything after it belongs to the home screen.
type State int

const (
	StateEmailEntry State = iota
	StateLogin
	StateRegister
	StateForgotPassword
	StateCheckYourEmail
	StateChangePassword
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateEmailEntry:
		return "email-entry"
	case StateLogin:
		return "login"
	case StateRegister:
		return "register"
	case StateForgotPassword:
		return "forgot-password"
	case StateCheckYourEmail:
		return "check-your-email"
	case StateChangePassword:
		return "change-password"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
