// Package credstore owns the locally persisted session credential.
//
// The credential lives in a single JSON file; nothing else in the client
// persists it. Expiry is enforced lazily: an expired or unreadable
// credential is wiped the next time it is read, never proactively.
package credstore

import "time"

// Credential is the token + expiry pair proving an authenticated session.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Valid reports whether the credential still proves a session at the given
// instant.
func (c Credential) Valid(now time.Time) bool {
	return c.Token != "" && c.ExpiresAt.After(now)
}

// Store persists at most one Credential.
//
// Contract:
//   - Save writes the credential with expiry now+ttl, replacing any
//     previous one.
//   - Read returns the stored credential, or ok=false if it is missing,
//     malformed, or expired. A malformed or expired credential is cleared
//     as a side effect. Read never fails any other way.
//   - Clear removes the credential; idempotent.
type Store interface {
	Save(token string, ttl time.Duration) error
	Read() (Credential, bool)
	Clear()
}
