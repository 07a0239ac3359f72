// Package guard gates navigation on authentication state. An expired session
// is torn down non-interactively before the user is sent back to login.
package guard

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"securechat/internal/domain"
)

var (
	// ErrNotAuthenticated gates protected targets when no session is held.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrSessionExpired gates any target once the token has expired.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// Route describes a navigation target.
type Route struct {
	Name      string
	Protected bool
}

// Decision is the guard's verdict for one navigation.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

// AuthState exposes the credential store's derived authentication flag.
type AuthState interface {
	IsAuthenticated() bool
}

// SessionEnder is the orchestrator's teardown entry point.
type SessionEnder interface {
	Logout(ctx context.Context, interactive bool) (bool, error)
}

// Guard owns no state; it consults the evaluator on every check and consumes
// the orchestrator's logout as a side effect.
type Guard struct {
	state   AuthState
	checker domain.SessionChecker
	auth    SessionEnder
	log     *zap.Logger
}

// New returns a guard over the given collaborators.
func New(state AuthState, checker domain.SessionChecker, auth SessionEnder, log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{state: state, checker: checker, auth: auth, log: log}
}

// Check decides one navigation. An authenticated-but-expired session is
// logged out first and short-circuits to the login redirect; public routes
// are otherwise always allowed, protected ones only when authenticated.
func (g *Guard) Check(ctx context.Context, route Route) Decision {
	if g.state.IsAuthenticated() && g.checker.Expired() {
		g.log.Info("session expired, forcing logout", zap.String("route", route.Name))
		if _, err := g.auth.Logout(ctx, false); err != nil {
			g.log.Warn("forced logout failed", zap.Error(err))
		}
		return RedirectToLogin
	}
	if route.Protected && !g.state.IsAuthenticated() {
		return RedirectToLogin
	}
	return Allow
}

// Require adapts Check for command-style callers: it returns an error
// explaining why a protected target is unreachable, nil when it may proceed.
func (g *Guard) Require(ctx context.Context) error {
	authed := g.state.IsAuthenticated()
	if authed && g.checker.Expired() {
		if _, err := g.auth.Logout(ctx, false); err != nil {
			g.log.Warn("forced logout failed", zap.Error(err))
		}
		return ErrSessionExpired
	}
	if !authed {
		return ErrNotAuthenticated
	}
	return nil
}
