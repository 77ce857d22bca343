// Package loglevel names and orders stderr log severities.
package loglevel

import (
	"fmt"
	"strings"
)

// Level orders log severities.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

// Parse converts a flag or setting value to a Level.
// Unknown and empty values are errors.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Warn, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

// FromString is Parse with unknown values falling back to Warn.
func FromString(s string) Level {
	level, _ := Parse(s)
	return level
}
