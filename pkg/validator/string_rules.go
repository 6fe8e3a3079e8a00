package validator

import "fmt"

// Required fails when the value is empty.
func Required(fieldName string) Validator {
	message := fmt.Sprintf("%s is required", fieldName)
	return Validator{
		Check: func(value any, _ Values) Result {
			if IsEmpty(value) {
				return Fail(KindMissingRequired, message)
			}
			return Pass()
		},
	}
}

// MinLength fails when the value is absent or shorter than n characters.
func MinLength(fieldName string, n int) Validator {
	message := fmt.Sprintf("%s must be at least %d characters", fieldName, n)
	return Validator{
		Check: func(value any, _ Values) Result {
			length, ok := textLength(value)
			if !ok || length < n {
				return Fail(KindRangeInvalid, message)
			}
			return Pass()
		},
	}
}

// MaxLength fails when a present value is longer than n characters.
func MaxLength(fieldName string, n int) Validator {
	message := fmt.Sprintf("%s must be less than %d characters", fieldName, n)
	return Validator{
		Check: func(value any, _ Values) Result {
			length, ok := textLength(value)
			if ok && length > n {
				return Fail(KindRangeInvalid, message)
			}
			return Pass()
		},
	}
}

// Matches fails when the value differs from the value of another field.
// Used for confirmation fields.
func Matches(fieldName, otherField, otherName string) Validator {
	message := fmt.Sprintf("%s must match %s", fieldName, otherName)
	return Validator{
		Check: func(value any, all Values) Result {
			got, _ := stringValue(value)
			want, _ := stringValue(all.Get(otherField))
			if got != want {
				return Fail(KindFormatInvalid, message)
			}
			return Pass()
		},
	}
}

// OneOf fails when a present value is not among the allowed options.
func OneOf(fieldName string, options ...string) Validator {
	message := fmt.Sprintf("%s must be one of the allowed values", fieldName)
	allowed := make(map[string]bool, len(options))
	for _, o := range options {
		allowed[o] = true
	}
	return Validator{
		Check: func(value any, _ Values) Result {
			if IsEmpty(value) {
				return Pass()
			}
			s, _ := stringValue(value)
			if !allowed[s] {
				return Fail(KindFormatInvalid, message)
			}
			return Pass()
		},
	}
}
