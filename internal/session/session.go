// internal/session/session.go
package session

// Credentials identifies the caller of a synchronization operation: the
// backend-issued access token when authenticated, and the opaque guest
// session tag otherwise. Both may be present right after login, which is
// exactly the window where the guest-cart merge runs.
type Credentials struct {
	Token   string
	UserID  uint
	GuestID string
}

// Authenticated reports whether the session carries a validated token
func (c Credentials) Authenticated() bool {
	return c.Token != ""
}
