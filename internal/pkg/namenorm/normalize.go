package namenorm

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Mode selects the Unicode normalization form applied to names.
type Mode string

const (
	ModeNone Mode = "none"
	ModeNFC  Mode = "nfc"
	ModeNFKC Mode = "nfkc"
)

// ParseMode converts a flag or config value to a Mode.
// An empty string means ModeNone.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeNone:
		return ModeNone, nil
	case ModeNFC:
		return ModeNFC, nil
	case ModeNFKC:
		return ModeNFKC, nil
	default:
		return "", fmt.Errorf("unknown normalize mode %q (want none, nfc or nfkc)", s)
	}
}

// Normalize applies mode to name. Any mode other than ModeNone also trims
// surrounding whitespace; ModeNone returns name untouched.
func Normalize(name string, mode Mode) string {
	switch mode {
	case ModeNFC:
		return strings.TrimSpace(norm.NFC.String(name))
	case ModeNFKC:
		return strings.TrimSpace(norm.NFKC.String(name))
	default:
		return name
	}
}

// NormalizeAll applies Normalize to every name.
func NormalizeAll(names []string, mode Mode) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Normalize(n, mode)
	}
	return out
}
