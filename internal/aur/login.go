package aur

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/t-8ch/burp/internal/logging"
)

// loginFailMarker appears in the AUR login page when credentials are wrong.
const loginFailMarker = "Bad username or password."

// Login authenticates the session. With useCredentials false and a cookie
// file configured, it reuses the stored session cookie; otherwise it submits
// the login form. Failure kinds are reported via the package sentinels.
func (c *Client) Login(ctx context.Context, useCredentials bool) error {
	if c.username == "" {
		return ErrInsufficientCredentials
	}

	if !useCredentials && c.cookieFile != "" {
		return c.loginWithCookies()
	}

	if c.password == "" {
		password, err := promptPassword(c.username)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInsufficientCredentials, err)
		}
		c.password = password
	}

	return c.loginWithPassword(ctx)
}

func (c *Client) loginWithCookies() error {
	sid, err := c.loadStoredSession(time.Now())
	if err != nil {
		return err
	}

	c.httpc.Jar.SetCookies(c.baseURL(), []*http.Cookie{{
		Name:  sessionCookieName,
		Value: sid,
	}})
	c.aursid = sid

	c.log.Debug("reusing stored session cookie",
		logging.Field{Key: logging.FieldCookies, Value: c.cookieFile})

	return nil
}

func (c *Client) loginWithPassword(ctx context.Context) error {
	rememberMe := ""
	if c.persistCookies {
		rememberMe = "on"
	}

	form := url.Values{
		"user":        {c.username},
		"passwd":      {c.password},
		"remember_me": {rememberMe},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/login"), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to communicate with %s: %w", c.domain, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read login response: %w", err)
	}

	if strings.Contains(string(body), loginFailMarker) {
		return ErrBadCredentials
	}

	sid := c.sessionIDFromJar()
	if sid == "" {
		return ErrCookieRejected
	}
	c.aursid = sid

	c.log.Debug("password login succeeded",
		logging.Field{Key: logging.FieldUser, Value: c.username})

	if c.persistCookies && c.cookieFile != "" {
		if err := c.writeCookieFile(); err != nil {
			c.log.WithError(err).Warn("failed to persist session cookie",
				logging.Field{Key: logging.FieldCookies, Value: c.cookieFile})
		}
	}

	return nil
}
