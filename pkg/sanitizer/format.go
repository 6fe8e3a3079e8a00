package sanitizer

import "strings"

// NormalizeEmail lowercases and trims an address and collapses repeated dots
// in the local part. Input without exactly one @ is only trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail keeps the first character and the domain, for logs.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	if len(local) == 1 {
		return "*@" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}

// NormalizePhone keeps a leading + and the digits, dropping all formatting.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if strings.HasPrefix(phone, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}

// MaskPhone shows only the last four digits.
func MaskPhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// NormalizeNIC removes spaces and dashes and upper-cases the legacy V/X suffix.
func NormalizeNIC(nic string) string {
	nic = strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(nic))
	return strings.ToUpper(nic)
}
