package snarf

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	usernameRE   = regexp.MustCompile(`\s+|\.|-`)
)

// CleanText collapses every run of whitespace into a single space and trims
// leading and trailing space. It is applied to every extracted text field
// and is idempotent.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// Username reduces an author name to a username-like form by stripping all
// whitespace, periods, and hyphens (e.g. "A. B. Smith-Jones" → "ABSmithJones").
func Username(name string) string {
	return strings.TrimSpace(usernameRE.ReplaceAllString(name, ""))
}
