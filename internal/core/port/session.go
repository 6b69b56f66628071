package port

// SessionService is an interface to define admin session handling
type SessionService interface {
	// Login checks the shared admin password and mints a signed session token.
	Login(password string) (string, error)
	// Verify reports whether token is a valid, unexpired session token.
	Verify(token string) error
}
