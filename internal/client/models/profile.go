// Package models defines the data transfer types exchanged with the
// identity service.
package models

// Profile is the authenticated account as returned by GET /user. It is
// read-only and lives only for the home screen's rendering lifetime.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}
