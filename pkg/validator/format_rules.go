package validator

import "fmt"

// The format validators skip empty values so that Required alone decides presence.

// Email fails when a present value is not a valid email address.
func Email(fieldName string) Validator {
	return formatRule(IsValidEmail, fmt.Sprintf("%s must be a valid email address", fieldName))
}

// Phone fails when a present value has fewer than MinPhoneDigits digits.
func Phone(fieldName string) Validator {
	return formatRule(IsValidPhoneNumber, fmt.Sprintf("%s must be a valid phone number", fieldName))
}

// NIC fails when a present value is not a national identity card number.
func NIC(fieldName string) Validator {
	return formatRule(IsValidNIC, fmt.Sprintf("%s must be a valid NIC number", fieldName))
}

// URL fails when a present value is not an absolute URL.
func URL(fieldName string) Validator {
	return formatRule(IsValidURL, fmt.Sprintf("%s must be a valid URL", fieldName))
}

// Number fails when a present value is not a finite number.
func Number(fieldName string) Validator {
	return formatRule(IsNumber, fmt.Sprintf("%s must be a number", fieldName))
}

// Predicate builds a format validator from any predicate.
func Predicate(check func(value any) bool, message string) Validator {
	return formatRule(check, message)
}

func formatRule(check func(value any) bool, message string) Validator {
	return Validator{
		Check: func(value any, _ Values) Result {
			if IsEmpty(value) || check(value) {
				return Pass()
			}
			return Fail(KindFormatInvalid, message)
		},
	}
}
