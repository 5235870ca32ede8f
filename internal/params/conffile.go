package params

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/t-8ch/burp/internal/logging"
)

// ConfigReadError reports a config file that exists but could not be read.
// It is distinct from the file being absent, which is not an error at all.
type ConfigReadError struct {
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("failed to read config file %s: %v", e.Path, e.Err)
}

func (e *ConfigReadError) Unwrap() error {
	return e.Err
}

// ConfigFilePath returns the burp.conf location: $XDG_CONFIG_HOME/burp/burp.conf,
// falling back to $HOME/.config/burp/burp.conf. Empty when neither variable is set.
func ConfigFilePath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "burp", "burp.conf")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "burp", "burp.conf")
	}
	return ""
}

// ReadConfigFile reads burp.conf and returns the values it provides.
// A missing file yields zero values without error. A file that exists but
// cannot be opened is a *ConfigReadError and fatal to startup.
func ReadConfigFile(log logging.Logger) (Values, error) {
	path := ConfigFilePath()
	if path == "" {
		log.Warn("unable to determine location of config file, skipping")
		return Values{}, nil
	}
	return readConfigFile(path, log)
}

func readConfigFile(path string, log logging.Logger) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Values{}, nil
		}
		return Values{}, &ConfigReadError{Path: path, Err: err}
	}
	defer f.Close()

	var values Values

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "User":
			values.Username = value
		case "Password":
			values.Password = value
		case "Cookies":
			expanded, err := ExpandPath(value)
			if err != nil {
				// Expansion failure discards the value but is not fatal.
				log.WithError(err).Warn("ignoring unexpandable Cookies path",
					logging.Field{Key: logging.FieldCookies, Value: value})
				continue
			}
			values.CookieFile = expanded
		case "Persist":
			// Presence-only key; it carries no value.
			values.Persist = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Values{}, &ConfigReadError{Path: path, Err: err}
	}

	return values, nil
}

// ExpandPath performs shell-style expansion of a leading "~" and of
// environment variable references in a path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand %q: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return os.ExpandEnv(path), nil
}
