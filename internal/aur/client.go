// Package aur implements the AUR web session: login, cookie storage and
// package submission.
package aur

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/t-8ch/burp/internal/logging"
)

// sessionCookieName is the cookie the AUR hands out on successful login.
const sessionCookieName = "AURSID"

// Client is an authenticated session against one AUR instance.
// It is not safe for concurrent use; the upload pipeline is sequential.
type Client struct {
	domain string
	scheme string

	username       string
	password       string
	cookieFile     string
	persistCookies bool

	// aursid is set once a login attempt succeeds.
	aursid string

	httpc *http.Client
	log   logging.Logger
}

// NewClient creates a client for the given AUR domain. All requests use
// HTTPS and share one cookie jar for the lifetime of the process.
func NewClient(domain string, timeout time.Duration, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		domain: domain,
		scheme: "https",
		httpc: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		log: log,
	}, nil
}

// SetUsername sets the login username. Must be called before Login.
func (c *Client) SetUsername(username string) {
	c.username = username
}

// SetPassword sets the login password. When empty, password login prompts
// interactively on a terminal.
func (c *Client) SetPassword(password string) {
	c.password = password
}

// SetCookieFile sets the path used to read and, with persistence enabled,
// write stored login cookies.
func (c *Client) SetCookieFile(path string) {
	c.cookieFile = path
}

// SetPersistCookies controls whether a successful password login writes the
// session cookie back to the cookie file.
func (c *Client) SetPersistCookies(enabled bool) {
	c.persistCookies = enabled
}

func (c *Client) baseURL() *url.URL {
	return &url.URL{Scheme: c.scheme, Host: c.domain}
}

func (c *Client) endpoint(path string) string {
	u := c.baseURL()
	u.Path = path
	return u.String()
}

// sessionIDFromJar returns the AURSID value currently in the cookie jar,
// or "" when the server has not set one.
func (c *Client) sessionIDFromJar() string {
	for _, cookie := range c.httpc.Jar.Cookies(c.baseURL()) {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	return ""
}
