// Command passhash prints the argon2id hash of a password in the form the
// gateway expects in APP_ADMIN_USERS.
//
// Usage:
//
//	passhash <password>
//	passhash            # prompts without echo
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/go-exchange-admin/internal/crypto"
)

func main() {
	password, err := readPassword(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: passhash [password]")
		os.Exit(2)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}

func readPassword(args []string) (string, error) {
	switch len(args) {
	case 1:
		return args[0], nil
	case 0:
	default:
		return "", fmt.Errorf("expected one argument, got %d", len(args))
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password given and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	return string(raw), nil
}
