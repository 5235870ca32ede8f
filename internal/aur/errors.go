package aur

import "errors"

// Failure kinds for login attempts. The login coordinator matches these with
// errors.Is to decide between fallback and terminal failure.
var (
	// ErrInsufficientCredentials means no username was available at all.
	ErrInsufficientCredentials = errors.New("insufficient credentials provided to login")

	// ErrBadCredentials means the AUR rejected the username/password pair.
	ErrBadCredentials = errors.New("bad username or password")

	// ErrCookieExpired means a stored login cookie exists but is past its expiry.
	ErrCookieExpired = errors.New("login cookie has expired")

	// ErrCookieRejected means the server did not hand back a session cookie.
	ErrCookieRejected = errors.New("login cookie not accepted")

	// ErrNoCookie means no usable stored cookie was found.
	ErrNoCookie = errors.New("no stored login cookie found")
)
