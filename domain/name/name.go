// Package name provides the canonical identifier transforms used
// throughout generation: kebab-case for directory and repository names,
// snake_case for package and module identifiers.
package name

import (
	"strings"
	"unicode"
)

// ToKebab converts arbitrary user text to a kebab-case identifier:
// runs of whitespace and underscores fold into a single hyphen, the
// result is lowercased, characters outside [a-z0-9-] are stripped,
// repeated hyphens collapse, and leading/trailing hyphens are trimmed.
//
// This is a PURE function - no I/O, fully deterministic, and idempotent:
// ToKebab(ToKebab(s)) == ToKebab(s). It may return "" for input that
// contains no usable characters; callers treat that as invalid input.
func ToKebab(s string) string {
	return canonicalize(s, '-', '_')
}

// ToSnake converts arbitrary user text to a snake_case identifier:
// runs of whitespace and hyphens fold into a single underscore, the
// result is lowercased, characters outside [a-z0-9_] are stripped,
// repeated underscores collapse, and leading/trailing underscores are
// trimmed.
//
// Pure and idempotent, same contract as ToKebab.
func ToSnake(s string) string {
	return canonicalize(s, '_', '-')
}

// canonicalize lowercases s, folds whitespace and fold runs into sep,
// drops every rune outside [a-z0-9], collapses repeated separators, and
// trims separators from both ends. Single pass; a separator is emitted
// only when a keepable rune follows it.
func canonicalize(s string, sep, fold rune) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range s {
		r = unicode.ToLower(r)
		switch {
		case r == sep || r == fold || unicode.IsSpace(r):
			pending = true
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteRune(sep)
			}
			pending = false
			b.WriteRune(r)
		}
		// Everything else is stripped without affecting separator state.
	}
	return b.String()
}
