package validator

import "errors"

var (
	// ErrValidationFailed is matched by any non-empty ErrorMap.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingRequired is returned when a required field is empty.
	ErrMissingRequired = errors.New("field is required")

	// ErrFormatInvalid is returned when a value fails a structural pattern.
	ErrFormatInvalid = errors.New("invalid format")

	// ErrRangeInvalid is returned when a value is outside a length or date bound.
	ErrRangeInvalid = errors.New("value out of range")

	// ErrPolicyViolation is returned when a password breaks an enabled policy rule.
	ErrPolicyViolation = errors.New("policy violation")
)

// Kind classifies a failed Result.
type Kind uint8

const (
	KindNone Kind = iota
	KindMissingRequired
	KindFormatInvalid
	KindRangeInvalid
	KindPolicyViolation
)

func (k Kind) String() string {
	switch k {
	case KindMissingRequired:
		return "missing_required"
	case KindFormatInvalid:
		return "format_invalid"
	case KindRangeInvalid:
		return "range_invalid"
	case KindPolicyViolation:
		return "policy_violation"
	default:
		return "none"
	}
}

// Err returns the sentinel error for the kind.
func (k Kind) Err() error {
	switch k {
	case KindMissingRequired:
		return ErrMissingRequired
	case KindFormatInvalid:
		return ErrFormatInvalid
	case KindRangeInvalid:
		return ErrRangeInvalid
	case KindPolicyViolation:
		return ErrPolicyViolation
	default:
		return ErrValidationFailed
	}
}
