package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)

	// Frequently compromised passwords, compared case-insensitively.
	commonPasswords = map[string]bool{
		"password":    true,
		"password1":   true,
		"password123": true,
		"password1!":  true,
		"p@ssw0rd":    true,
		"p@ssword1":   true,
		"passw0rd!":   true,
		"123456":      true,
		"12345678":    true,
		"123456789":   true,
		"1234567890":  true,
		"qwerty":      true,
		"qwerty123":   true,
		"qwerty1!":    true,
		"abc123":      true,
		"abcd1234":    true,
		"letmein":     true,
		"letmein1!":   true,
		"welcome":     true,
		"welcome1":    true,
		"welcome1!":   true,
		"welcome123":  true,
		"admin":       true,
		"admin123":    true,
		"admin@123":   true,
		"changeme":    true,
		"changeme1!":  true,
		"iloveyou":    true,
		"trustno1":    true,
		"1q2w3e4r":    true,
		"1qaz2wsx":    true,
		"zaq12wsx":    true,
		"monkey":      true,
		"dragon":      true,
		"sunshine":    true,
		"football":    true,
		"baseball":    true,
		"master":      true,
		"secret":      true,
		"summer2024!": true,
		"winter2024!": true,
	}
)

// PasswordPolicy lists which password rules are enforced.
type PasswordPolicy struct {
	MinLength           int  `json:"min_length"`
	RequireUppercase    bool `json:"require_uppercase"`
	RequireLowercase    bool `json:"require_lowercase"`
	RequireNumbers      bool `json:"require_numbers"`
	RequireSpecialChars bool `json:"require_special_chars"`
}

// DefaultPasswordPolicy requires 8+ characters with every character class.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:           8,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
	}
}

// PasswordPolicyOverrides holds partial policy settings.
// A nil field keeps the DefaultPasswordPolicy value.
type PasswordPolicyOverrides struct {
	MinLength           *int  `env:"PASSWORD_MIN_LENGTH"`
	RequireUppercase    *bool `env:"PASSWORD_REQUIRE_UPPERCASE"`
	RequireLowercase    *bool `env:"PASSWORD_REQUIRE_LOWERCASE"`
	RequireNumbers      *bool `env:"PASSWORD_REQUIRE_NUMBERS"`
	RequireSpecialChars *bool `env:"PASSWORD_REQUIRE_SPECIAL"`
}

// Resolve merges the overrides onto DefaultPasswordPolicy.
func (o PasswordPolicyOverrides) Resolve() PasswordPolicy {
	p := DefaultPasswordPolicy()
	if o.MinLength != nil {
		p.MinLength = *o.MinLength
	}
	if o.RequireUppercase != nil {
		p.RequireUppercase = *o.RequireUppercase
	}
	if o.RequireLowercase != nil {
		p.RequireLowercase = *o.RequireLowercase
	}
	if o.RequireNumbers != nil {
		p.RequireNumbers = *o.RequireNumbers
	}
	if o.RequireSpecialChars != nil {
		p.RequireSpecialChars = *o.RequireSpecialChars
	}
	return p
}

// ValidatePassword checks password against the defaults merged with overrides.
func ValidatePassword(password string, overrides PasswordPolicyOverrides) Result {
	return CheckPassword(password, overrides.Resolve())
}

// CheckPassword runs the policy rules in a fixed order and reports the first violation:
// presence, length, uppercase, lowercase, digit, special character.
func CheckPassword(password string, policy PasswordPolicy) Result {
	if password == "" {
		return Fail(KindMissingRequired, "Password is required")
	}
	if len([]rune(password)) < policy.MinLength {
		return Fail(KindPolicyViolation, fmt.Sprintf("Password must be at least %d characters long", policy.MinLength))
	}
	if policy.RequireUppercase && !uppercaseRegex.MatchString(password) {
		return Fail(KindPolicyViolation, "Password must contain at least one uppercase letter")
	}
	if policy.RequireLowercase && !lowercaseRegex.MatchString(password) {
		return Fail(KindPolicyViolation, "Password must contain at least one lowercase letter")
	}
	if policy.RequireNumbers && !digitRegex.MatchString(password) {
		return Fail(KindPolicyViolation, "Password must contain at least one number")
	}
	if policy.RequireSpecialChars && !specialCharRegex.MatchString(password) {
		return Fail(KindPolicyViolation, "Password must contain at least one special character")
	}
	return Pass()
}

// Password adapts the password checker into a schema Validator.
func Password(policy PasswordPolicy) Validator {
	return Validator{
		Check: func(value any, _ Values) Result {
			s, _ := stringValue(value)
			return CheckPassword(s, policy)
		},
	}
}

// NotCommonPassword rejects passwords found in the weak-password list.
// Empty values pass so that Required decides presence.
func NotCommonPassword(fieldName string) Validator {
	return Validator{
		Check: func(value any, _ Values) Result {
			s, ok := stringValue(value)
			if !ok || s == "" || !commonPasswords[strings.ToLower(s)] {
				return Pass()
			}
			return Fail(KindPolicyViolation, fmt.Sprintf("%s is too common, please choose a different one", fieldName))
		},
	}
}
