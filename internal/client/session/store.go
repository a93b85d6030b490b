// Package session holds the email address discovered on the entry screen so
// that the login and register screens can reuse it without re-prompting.
// The store's lifetime is the client session: it survives navigation between
// screens and dies with the process, mirroring tab-scoped sessionStorage.
package session

// Store is the session-scoped email handoff. Screens that require the email
// (login, register) treat an absent value as a hard precondition failure and
// redirect back to the entry screen.
type Store interface {
	Set(email string)
	Get() (string, bool)
	Clear()
}

// MemoryStore keeps the email in process memory. An empty string counts as
// absent. All access happens on the single interaction goroutine, so no
// locking is needed.
type MemoryStore struct {
	email string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(email string) {
	s.email = email
}

func (s *MemoryStore) Get() (string, bool) {
	return s.email, s.email != ""
}

func (s *MemoryStore) Clear() {
	s.email = ""
}
