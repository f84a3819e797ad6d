package entity

import "time"

// Session mirrors the persisted credential in memory for the lifetime of the
// authentication session. The secret store is the source of truth; the mirror
// is only written through the sign-in/sign-out/restore operations.
type Session struct {
	// Token is the opaque bearer credential, empty when signed out.
	Token string

	// Restoring is true only during the initial load attempt at startup.
	Restoring bool
}

// IsAuthenticated reports whether a credential is present. It is derived,
// never stored.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// TokenInfo holds claims read from the bearer token without verifying its
// signature. The upstream server owns validation; this exists purely so the
// session endpoint can show who the credential belongs to.
type TokenInfo struct {
	Subject  string     // "sub" claim, the upstream user reference.
	User     string     // "user" claim when the upstream issues one.
	IssuedAt *time.Time // "iat" claim, nil when absent.
	ExpireAt *time.Time // "exp" claim, nil when absent.
}
