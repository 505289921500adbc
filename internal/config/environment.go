// Package config loads layered ingester settings.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Environment selects the settings overlay.
type Environment string

const (
	Local      Environment = "local"
	Production Environment = "production"
)

// ErrUnsupportedEnvironment is returned for any environment other than local
// and production.
var ErrUnsupportedEnvironment = errors.New("unsupported environment")

// ParseEnvironment parses an environment name, ignoring case and surrounding
// whitespace.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(s))); env {
	case Local, Production:
		return env, nil
	default:
		return "", fmt.Errorf("%w: %q, use either %q or %q", ErrUnsupportedEnvironment, s, Local, Production)
	}
}
