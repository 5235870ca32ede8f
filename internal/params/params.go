// Package params resolves the effective upload parameters for one invocation
// by merging burp.conf values with command-line flags.
package params

import (
	"fmt"

	"github.com/t-8ch/burp/internal/catalog"
)

// Values is one source of parameters (config file or CLI flags).
// Empty strings mean "not provided"; Persist can only be switched on.
type Values struct {
	Username   string
	Password   string
	CookieFile string
	Persist    bool
	Domain     string
	Category   string
}

// Params is the effective, merged parameter set for a single invocation.
// CategoryID is always a validated catalog identifier, never a raw name.
type Params struct {
	Domain         string
	Username       string
	Password       string
	CookieFile     string
	PersistCookies bool
	CategoryID     string
}

// InvalidCategoryError reports a category name that is not in the catalog,
// carrying the valid names for help output.
type InvalidCategoryError struct {
	Name  string
	Valid []string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q", e.Name)
}

// Resolve merges file values and CLI values into the effective parameter set.
// CLI values win; defaultDomain applies when neither source names a domain.
// The CLI category name is validated against the catalog here so that
// downstream code only ever sees a category identifier.
func Resolve(file, cli Values, defaultDomain string) (Params, error) {
	params := Params{
		Domain:         pick(cli.Domain, file.Domain, defaultDomain),
		Username:       pick(cli.Username, file.Username, ""),
		Password:       pick(cli.Password, file.Password, ""),
		CookieFile:     pick(cli.CookieFile, file.CookieFile, ""),
		PersistCookies: file.Persist || cli.Persist,
		CategoryID:     catalog.NoCategoryID,
	}

	if cli.Category != "" {
		id, err := catalog.Validate(cli.Category)
		if err != nil {
			return Params{}, &InvalidCategoryError{Name: cli.Category, Valid: catalog.Names()}
		}
		params.CategoryID = id
	}

	return params, nil
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
