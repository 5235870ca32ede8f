// Package login drives the AUR session through the cookie-first,
// password-fallback login sequence.
package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/t-8ch/burp/internal/aur"
	"github.com/t-8ch/burp/internal/logging"
)

// State is the coordinator's position in the login sequence.
type State int

const (
	StateUnauthenticated State = iota
	StateCookieLoginAttempted
	StatePasswordLoginAttempted
	StateAuthenticated
	StateFailed
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateCookieLoginAttempted:
		return "cookie login attempted"
	case StatePasswordLoginAttempted:
		return "password login attempted"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session is the slice of the AUR client the coordinator needs.
type Session interface {
	Login(ctx context.Context, useCredentials bool) error
}

// Coordinator performs at most two login attempts: a cookie-based one, then
// a password-based fallback when the cookie was merely missing or expired.
// Login failures are not transient, so there is no further retry.
type Coordinator struct {
	session  Session
	log      logging.Logger
	state    State
	attempts int
}

// NewCoordinator creates a coordinator in the unauthenticated state.
func NewCoordinator(session Session, log logging.Logger) *Coordinator {
	return &Coordinator{
		session: session,
		log:     log,
		state:   StateUnauthenticated,
	}
}

// State returns the coordinator's current state.
func (c *Coordinator) State() State {
	return c.state
}

// Attempts returns how many login calls have been made.
func (c *Coordinator) Attempts() int {
	return c.attempts
}

// Authenticate runs the login sequence. On failure the returned error is the
// failure kind of the attempt that terminated the sequence.
func (c *Coordinator) Authenticate(ctx context.Context) error {
	c.state = StateCookieLoginAttempted
	c.attempts++
	err := c.session.Login(ctx, false)
	if err == nil {
		c.state = StateAuthenticated
		return nil
	}

	switch {
	case errors.Is(err, aur.ErrCookieExpired):
		c.log.Warn("your cookie has expired, using password login")
	case errors.Is(err, aur.ErrNoCookie):
		c.log.Debug("no stored cookie, using password login")
	default:
		c.state = StateFailed
		return err
	}

	c.state = StatePasswordLoginAttempted
	c.attempts++
	if err := c.session.Login(ctx, true); err != nil {
		c.state = StateFailed
		return err
	}

	c.state = StateAuthenticated
	return nil
}

// Message maps a login failure to the diagnostic shown to the operator.
func Message(err error) string {
	switch {
	case errors.Is(err, aur.ErrInsufficientCredentials):
		return "insufficient credentials provided to login"
	case errors.Is(err, aur.ErrBadCredentials):
		return "bad username or password"
	case errors.Is(err, aur.ErrCookieExpired):
		return "required login cookie has expired"
	case errors.Is(err, aur.ErrCookieRejected):
		return "login cookie not accepted"
	default:
		return fmt.Sprintf("failed to login to AUR: %v", err)
	}
}
