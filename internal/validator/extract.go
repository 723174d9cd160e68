package validator

import (
	"regexp"
	"strings"
)

// answerPattern matches a flat JSON object mentioning "solutions" (any case).
var answerPattern = regexp.MustCompile(`(?is)\{[^{}]*"solutions"[^{}]*\}`)

// Extract returns the last {"solutions": ...} object found in text, or the trimmed
// text when there is none. It never fails; a non-JSON result fails verification.
func Extract(text string) string {
	matches := answerPattern.FindAllString(text, -1)
	if len(matches) > 0 {
		return matches[len(matches)-1]
	}
	return strings.TrimSpace(text)
}

// Extract is the method form of the package-level Extract.
func (v *Verifier) Extract(text string) string { return Extract(text) }
