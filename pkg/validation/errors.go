// Package validation implements the order item form validators: date
// composites, quantity and price rules, their bulk per-recipient variants,
// and the translation of server-side validation responses into the same
// error shape.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error is one validation rule violation. Field is the PascalCase question
// name, ID the specific rule that fired, and Part (dates only) names which
// of day/month/year are implicated.
type Error struct {
	Field string   `json:"field"`
	ID    string   `json:"id"`
	Part  []string `json:"part,omitempty"`
}

func (e Error) key() string {
	return e.Field + "|" + e.ID + "|" + strings.Join(e.Part, ",")
}

// Dedupe removes repeated {field, id, part} entries, keeping first-seen
// order. Bulk validators produce one error per invalid row; rows failing the
// same rule collapse to a single entry.
func Dedupe(errs []Error) []Error {
	if len(errs) < 2 {
		return errs
	}

	seen := make(map[string]bool, len(errs))
	out := make([]Error, 0, len(errs))
	for _, e := range errs {
		k := e.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}

// Capitalize uppercases the first character, turning a question id into its
// PascalCase field name.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lowercases the first character, turning a field name back into
// its question id.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
