package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/staffdesk/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()
	v := validator.Required("Name")

	for _, empty := range []any{nil, "", "   ", []string{}} {
		res := v.Run(empty, nil)
		assert.False(t, res.Valid, "value %#v", empty)
		assert.Equal(t, "Name is required", res.Message)
		assert.Equal(t, validator.KindMissingRequired, res.Kind)
	}

	for _, present := range []any{"Jane", 0, 0.0, false} {
		assert.True(t, v.Run(present, nil).Valid, "value %#v", present)
	}
}

func TestMinLength(t *testing.T) {
	t.Parallel()
	v := validator.MinLength("Name", 3)

	res := v.Run("ab", nil)
	assert.False(t, res.Valid)
	assert.Equal(t, "Name must be at least 3 characters", res.Message)
	assert.Equal(t, validator.KindRangeInvalid, res.Kind)

	assert.False(t, v.Run(nil, nil).Valid, "absent value fails")
	assert.True(t, v.Run("abc", nil).Valid)
	assert.True(t, v.Run("Zoë", nil).Valid, "counts characters")
	assert.True(t, v.Run(12345, nil).Valid, "numbers are stringified")
}

func TestMaxLength(t *testing.T) {
	t.Parallel()
	v := validator.MaxLength("Name", 5)

	res := v.Run("abcdef", nil)
	assert.False(t, res.Valid)
	assert.Equal(t, "Name must be less than 5 characters", res.Message)
	assert.Equal(t, validator.KindRangeInvalid, res.Kind)

	assert.True(t, v.Run(nil, nil).Valid, "absent value passes")
	assert.True(t, v.Run("", nil).Valid)
	assert.True(t, v.Run("abcde", nil).Valid)
	assert.True(t, v.Run("ééééé", nil).Valid, "counts characters")
}

func TestFactoriesAreEquivalent(t *testing.T) {
	t.Parallel()

	a := validator.MinLength("Code", 4)
	b := validator.MinLength("Code", 4)
	for _, in := range []any{nil, "", "abc", "abcd", "abcdef"} {
		assert.Equal(t, a.Run(in, nil), b.Run(in, nil), "input %#v", in)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()
	v := validator.Matches("Password confirmation", "password", "Password")

	all := validator.Values{"password": "Secret1!"}
	assert.True(t, v.Run("Secret1!", all).Valid)

	res := v.Run("secret1!", all)
	assert.False(t, res.Valid)
	assert.Equal(t, "Password confirmation must match Password", res.Message)
}

func TestOneOf(t *testing.T) {
	t.Parallel()
	v := validator.OneOf("Role", "admin", "manager", "staff")

	assert.True(t, v.Run("manager", nil).Valid)
	assert.True(t, v.Run("", nil).Valid)
	res := v.Run("owner", nil)
	assert.False(t, res.Valid)
	assert.Equal(t, "Role must be one of the allowed values", res.Message)
	assert.Equal(t, validator.KindFormatInvalid, res.Kind)
}
