// Package session gates protected views on credential validity.
//
// The guard is pure logic over a credstore.Store: it never caches, so
// expiry is enforced exactly when the store's lazy read enforces it.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/userdir/internal/client/credstore"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

type Guard struct {
	store      credstore.Store
	defaultTTL time.Duration
	log        logging.Logger
	now        func() time.Time
}

func NewGuard(store credstore.Store, defaultTTL time.Duration, log logging.Logger) *Guard {
	return &Guard{store: store, defaultTTL: defaultTTL, log: log, now: time.Now}
}

// IsAuthenticated reports whether a valid credential is currently stored.
func (g *Guard) IsAuthenticated() bool {
	_, ok := g.store.Read()
	return ok
}

// Token returns the current session token, if any.
func (g *Guard) Token() (string, bool) {
	cred, ok := g.store.Read()
	if !ok {
		return "", false
	}
	return cred.Token, true
}

// Require is called at the entry of a protected view. When the session is
// absent or expired it invokes onUnauthenticated (which performs the
// redirect) and returns false, telling the caller to render nothing.
func (g *Guard) Require(onUnauthenticated func()) bool {
	if g.IsAuthenticated() {
		return true
	}
	if onUnauthenticated != nil {
		onUnauthenticated()
	}
	return false
}

// Establish saves a fresh credential for the given token. If the token is
// a JWT carrying an exp claim in the future, that claim bounds the
// credential's lifetime; otherwise the configured default TTL applies.
func (g *Guard) Establish(ctx context.Context, token string) error {
	ttl := g.tokenTTL(ctx, token)
	if err := g.store.Save(token, ttl); err != nil {
		return err
	}
	g.log.Info(ctx, "session established", "ttl", ttl)
	return nil
}

// End clears the stored credential. Idempotent.
func (g *Guard) End() {
	g.store.Clear()
}

// tokenTTL inspects the token for a JWT exp claim. The signature is not
// verified: the server remains the authority, the claim only tightens the
// local expiry.
func (g *Guard) tokenTTL(ctx context.Context, token string) time.Duration {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return g.defaultTTL
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return g.defaultTTL
	}

	ttl := exp.Sub(g.now())
	if ttl <= 0 || ttl > g.defaultTTL {
		return g.defaultTTL
	}
	g.log.Debug(ctx, "token carries exp claim", "expires_at", exp.Time)
	return ttl
}
