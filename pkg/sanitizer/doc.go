// Package sanitizer normalizes raw form input before it is validated or
// stored: trimming, whitespace collapsing, name casing and canonical forms for
// email addresses, phone numbers and NIC numbers.
//
// All helpers are stateless `func(string) string` values, so they compose with
// Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveExtraWhitespace,
//	    sanitizer.TrimToLower,
//	)
//
//	clean("  Mixed CASE   Input\n") // "mixed case input"
//
// Name handling relies on golang.org/x/text for Unicode normalization (NFC)
// and language-aware title casing. Masking helpers (MaskEmail, MaskPhone) are
// meant for log output, never for stored values.
package sanitizer
