package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Values is a snapshot of all current form values keyed by field name.
type Values map[string]any

// Get returns the value stored under field, or nil.
func (v Values) Get(field string) any {
	if v == nil {
		return nil
	}
	return v[field]
}

// Result is the outcome of a single validator run.
// Message is always set when Valid is false.
type Result struct {
	Valid   bool
	Message string
	Kind    Kind
}

// Pass returns a successful Result.
func Pass() Result {
	return Result{Valid: true}
}

// Fail returns a failed Result of the given kind.
func Fail(kind Kind, message string) Result {
	return Result{Valid: false, Message: message, Kind: kind}
}

// Err converts a failed Result into an error wrapping the kind's sentinel.
// It returns nil for a valid Result.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Kind.Err(), r.Message)
}

// CheckFunc computes the result for one field given its value and the whole form.
type CheckFunc func(value any, all Values) Result

// Gate decides whether a validator applies for the current form state.
type Gate func(all Values) bool

// Validator pairs a check with an optional condition gate.
// A nil gate means the validator always applies.
type Validator struct {
	Check CheckFunc
	Gate  Gate
}

// When returns a copy of v that only applies when gate reports true.
// Gates compose: an existing gate must also pass.
func (v Validator) When(gate Gate) Validator {
	if gate == nil {
		return v
	}
	prev := v.Gate
	v.Gate = func(all Values) bool {
		if prev != nil && !prev(all) {
			return false
		}
		return gate(all)
	}
	return v
}

// Applies reports whether the validator's gate lets it run.
func (v Validator) Applies(all Values) bool {
	return v.Gate == nil || v.Gate(all)
}

// Run evaluates the check. A validator without a check always passes.
func (v Validator) Run(value any, all Values) Result {
	if v.Check == nil {
		return Pass()
	}
	return v.Check(value, all)
}

// Custom wraps an arbitrary check into a Validator.
func Custom(check CheckFunc) Validator {
	return Validator{Check: check}
}

// ErrorMap holds at most one error message per field.
type ErrorMap map[string]string

func (e ErrorMap) Error() string {
	if len(e) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidationFailed against a non-empty ErrorMap.
func (e ErrorMap) Is(target error) bool {
	return len(e) > 0 && target == ErrValidationFailed
}

func (e ErrorMap) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e ErrorMap) Get(field string) string {
	return e[field]
}

// Fields returns the names of failed fields in sorted order.
func (e ErrorMap) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

func (e ErrorMap) IsEmpty() bool {
	return len(e) == 0
}

// Err returns nil when there are no errors, otherwise the map itself as an error.
func (e ErrorMap) Err() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

// ExtractErrorMap pulls an ErrorMap out of an error chain.
func ExtractErrorMap(err error) ErrorMap {
	if err == nil {
		return nil
	}

	var em ErrorMap
	if errors.As(err, &em) {
		return em
	}
	return nil
}

// IsValidationError reports whether err carries an ErrorMap.
func IsValidationError(err error) bool {
	return ExtractErrorMap(err) != nil
}
