// Package normalize provides the deterministic text normalizer used by the
// classification pipeline
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Collapse whitespace runs (including newlines and tabs) to single spaces and trim
package normalize

import (
	"strings"
	"unicode"
)

// Normalizer is stateless and safe for concurrent use
type Normalizer struct{}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
// total and idempotent: Normalize(Normalize(s)) == Normalize(s)
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	return collapseSpaces(s)
}

// collapseSpaces converts every whitespace run to a single ASCII space and
// trims leading and trailing whitespace
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	wrote := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && wrote {
			b.WriteByte(' ')
		}
		inWS = false
		wrote = true
		b.WriteRune(r)
	}
	return b.String()
}
