package validator

import (
	"fmt"
	"time"
)

// PastDate fails when a present value is not a valid date before now.
func PastDate(fieldName string) Validator {
	return pastDate(fieldName, time.Now)
}

func pastDate(fieldName string, now func() time.Time) Validator {
	message := fmt.Sprintf("%s must be in the past", fieldName)
	return Validator{
		Check: func(value any, _ Values) Result {
			if IsEmpty(value) {
				return Pass()
			}
			if _, ok := timeValue(value); !ok {
				return Fail(KindFormatInvalid, fmt.Sprintf("%s must be a valid date", fieldName))
			}
			if !IsPastDateAt(value, now()) {
				return Fail(KindRangeInvalid, message)
			}
			return Pass()
		},
	}
}

// MinAge fails when a present birth date is less than years ago.
func MinAge(fieldName string, years int) Validator {
	return minAge(fieldName, years, time.Now)
}

func minAge(fieldName string, years int, now func() time.Time) Validator {
	message := fmt.Sprintf("%s must be at least %d years ago", fieldName, years)
	return Validator{
		Check: func(value any, _ Values) Result {
			if IsEmpty(value) {
				return Pass()
			}
			birth, ok := timeValue(value)
			if !ok {
				return Fail(KindFormatInvalid, fmt.Sprintf("%s must be a valid date", fieldName))
			}
			if Age(birth, now()) < years {
				return Fail(KindRangeInvalid, message)
			}
			return Pass()
		},
	}
}

// Age returns the number of full years between birth and now.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()

	// Birthday has not occurred yet this year
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
