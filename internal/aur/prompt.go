package aur

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptPassword asks for the account password without echoing it.
// Refuses to prompt when stdin is not a terminal.
func promptPassword(user string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password given and stdin is not a terminal")
	}

	fmt.Printf("[%s] password: ", user)
	password, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}
