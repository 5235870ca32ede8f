package aur

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
)

// httpOnlyPrefix marks HttpOnly cookies in Netscape-format cookie files.
const httpOnlyPrefix = "#HttpOnly_"

// storedCookie is one line of a Netscape-format cookie file, the format
// curl-era burp shared with other AUR tooling.
type storedCookie struct {
	Domain   string
	Flag     bool
	Path     string
	Secure   bool
	Expires  time.Time
	Name     string
	Value    string
	HTTPOnly bool
}

// readCookieFile parses a Netscape-format cookie file. Malformed lines are
// skipped rather than failing the whole file.
func readCookieFile(path string) ([]storedCookie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cookies []storedCookie

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		httpOnly := strings.HasPrefix(line, httpOnlyPrefix)
		if httpOnly {
			line = strings.TrimPrefix(line, httpOnlyPrefix)
		} else if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}

		expiry, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			continue
		}

		cookies = append(cookies, storedCookie{
			Domain:   fields[0],
			Flag:     fields[1] == "TRUE",
			Path:     fields[2],
			Secure:   fields[3] == "TRUE",
			Expires:  time.Unix(expiry, 0),
			Name:     fields[5],
			Value:    fields[6],
			HTTPOnly: httpOnly,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cookies, nil
}

// loadStoredSession looks for a usable AURSID cookie in the cookie file.
// Expired cookies for the configured domain abort the lookup so the caller
// can warn and fall back to password login.
func (c *Client) loadStoredSession(now time.Time) (string, error) {
	cookies, err := readCookieFile(c.cookieFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoCookie
		}
		return "", fmt.Errorf("failed to read cookie file %s: %w", c.cookieFile, err)
	}

	for _, cookie := range cookies {
		if cookie.Domain != c.domain {
			continue
		}
		if now.After(cookie.Expires) {
			return "", ErrCookieExpired
		}
		if cookie.Name != sessionCookieName {
			continue
		}
		return cookie.Value, nil
	}

	return "", ErrNoCookie
}

// writeCookieFile persists the current session cookie in Netscape format so
// later invocations can log in without a password.
func (c *Client) writeCookieFile() error {
	sid := c.sessionIDFromJar()
	if sid == "" {
		return fmt.Errorf("no %s cookie to persist", sessionCookieName)
	}

	// The jar does not expose the server-side expiry; keep the cookie a month.
	expires := time.Now().Add(30 * 24 * time.Hour)

	line := fmt.Sprintf("%s%s\tFALSE\t/\tTRUE\t%d\t%s\t%s\n",
		httpOnlyPrefix, c.domain, expires.Unix(), sessionCookieName, sid)

	header := "# Netscape HTTP Cookie File\n"
	return os.WriteFile(c.cookieFile, []byte(header+line), 0600)
}
