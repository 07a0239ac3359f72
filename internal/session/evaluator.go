// Package session decides whether the held session token is still usable.
// The check is purely local: it reads the token's embedded expiry claim and
// never talks to the backend.
package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"securechat/internal/domain"
)

// Evaluator reports token expiry from the exp claim. The token's signature is
// the backend's business; the client holds no verification secret, so the
// payload is decoded without validation. Any malformed token reads as
// expired: fail closed, never open.
type Evaluator struct {
	tokens domain.TokenSource
	parser *jwt.Parser
	clock  func() time.Time
}

// NewEvaluator returns an evaluator over the given token source.
func NewEvaluator(tokens domain.TokenSource) *Evaluator {
	return &Evaluator{
		tokens: tokens,
		parser: jwt.NewParser(),
		clock:  time.Now,
	}
}

// WithClock overrides the wall-clock source. Returns e for chaining in tests.
func (e *Evaluator) WithClock(clock func() time.Time) *Evaluator {
	e.clock = clock
	return e
}

// Expired reports whether the session token is missing, malformed, or past
// its expiry claim.
func (e *Evaluator) Expired() bool {
	token, ok := e.tokens.Token()
	if !ok {
		return true
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return true
	}
	payload, err := e.parser.DecodeSegment(parts[1])
	if err != nil {
		return true
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return !e.clock().Before(exp.Time)
}

var _ domain.SessionChecker = (*Evaluator)(nil)
