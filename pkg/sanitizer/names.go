package sanitizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NFC returns the canonical composed form of s so that visually equal
// names compare and count equally.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// PersonName normalizes a human name: NFC form, single spaces, no control
// characters and an upper-case first letter per word. Existing capitals are
// kept, so "mcDonald" becomes "McDonald".
func PersonName(s string) string {
	s = SingleLine(NFC(s))
	if s == "" {
		return s
	}
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.English, cases.NoLower).String(s)
}
