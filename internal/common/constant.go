// Package common contains user-facing message constants shared across
// the client layers. The strings are product copy and must be surfaced
// verbatim.
package common

const (
	// FallbackErrorMessage is shown when a request fails without a
	// server-provided message (network failure, malformed response).
	FallbackErrorMessage = "An error occurred. Please try again later."

	// WeakPasswordMessage is shown when a candidate password does not meet
	// the minimum strength policy.
	WeakPasswordMessage = "Password must contain a minimum of 10 characters and at least 1 uppercase letter"

	// PasswordMismatchMessage is shown when the confirmation field does not
	// match the new password.
	PasswordMismatchMessage = "The two passwords do not match"
)
