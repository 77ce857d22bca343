// Package greeting builds greeting strings from names.
package greeting

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Salutation is prepended to every name.
const Salutation = "Hello, "

// ErrInvalidArgument is returned by GreetStrict for missing or malformed names.
var ErrInvalidArgument = errors.New("invalid argument")

// Greet returns Salutation immediately followed by name.
// No punctuation is added; an empty name yields Salutation alone.
func Greet(name string) string {
	return Salutation + name
}

// GreetStrict behaves like Greet but rejects empty names and names that
// are not valid UTF-8.
func GreetStrict(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name is required: %w", ErrInvalidArgument)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("name %q is not valid UTF-8: %w", name, ErrInvalidArgument)
	}
	return Greet(name), nil
}

// GreetAll greets each name in order.
func GreetAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, Greet(name))
	}
	return out
}
