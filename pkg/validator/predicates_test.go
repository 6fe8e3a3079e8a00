package validator_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/staffdesk/pkg/validator"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilString *string
	var nilTime *time.Time
	blank := "   "
	filled := "x"

	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "nil", input: nil, expected: true},
		{name: "empty string", input: "", expected: true},
		{name: "whitespace only", input: " \t\n ", expected: true},
		{name: "text", input: "hello", expected: false},
		{name: "zero int is a value", input: 0, expected: false},
		{name: "zero float is a value", input: 0.0, expected: false},
		{name: "false is a value", input: false, expected: false},
		{name: "nil string pointer", input: nilString, expected: true},
		{name: "blank string pointer", input: &blank, expected: true},
		{name: "filled string pointer", input: &filled, expected: false},
		{name: "zero time", input: time.Time{}, expected: true},
		{name: "nil time pointer", input: nilTime, expected: true},
		{name: "set time", input: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "empty slice", input: []string{}, expected: true},
		{name: "non-empty slice", input: []string{"a"}, expected: false},
		{name: "empty json number", input: json.Number(""), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsEmpty(tt.input))
		})
	}
}

func TestTypedEmptiness(t *testing.T) {
	t.Parallel()

	zero := 0.0
	assert.True(t, validator.IsNumberAbsent(nil))
	assert.False(t, validator.IsNumberAbsent(&zero))
	assert.True(t, validator.IsDateUnset(time.Time{}))
	assert.False(t, validator.IsDateUnset(time.Now()))
	assert.True(t, validator.IsEmptyString("  "))
	assert.False(t, validator.IsEmptyString(" a "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []any{
		"a@b.co",
		"user@example.com",
		"first.last+tag@sub.example.org",
		"user_name%x@domain-name.io",
	}
	for _, v := range valid {
		assert.True(t, validator.IsValidEmail(v), "expected valid: %v", v)
	}

	invalid := []any{
		nil,
		"",
		"not-an-email",
		"user@",
		"@example.com",
		"user@example",
		"user@example.c",
		"user name@example.com",
		"user@exa mple.com",
		42,
	}
	for _, v := range invalid {
		assert.False(t, validator.IsValidEmail(v), "expected invalid: %v", v)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidPhoneNumber("(555) 123-4567"))
	assert.True(t, validator.IsValidPhoneNumber("+94 77 123 4567"))
	assert.True(t, validator.IsValidPhoneNumber("0771234567"))
	assert.True(t, validator.IsValidPhoneNumber("+1-800-555-0199 ext 12"))

	assert.False(t, validator.IsValidPhoneNumber("12345"))
	assert.False(t, validator.IsValidPhoneNumber("555-123-456"))
	assert.False(t, validator.IsValidPhoneNumber("phone"))
	assert.False(t, validator.IsValidPhoneNumber(""))
	assert.False(t, validator.IsValidPhoneNumber(nil))
}

func TestIsValidNIC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    any
		expected bool
	}{
		{"123456789V", true},
		{"123456789v", true},
		{"123456789X", true},
		{"123456789x", true},
		{"199012345678", true},
		{"12345", false},
		{"123456789", false},
		{"12345678V", false},
		{"123456789A", false},
		{"1990123456789", false},
		{"19901234567a", false},
		{" 123456789V", false},
		{"", false},
		{nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, validator.IsValidNIC(tt.input), "input: %v", tt.input)
	}
}

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://example.com",
		"http://localhost:8080/path?q=1",
		"ftp://files.example.com/pub",
		"mailto:someone@example.com",
		"https://example.com/a%20b",
		"  https://example.com\n",
	}
	for _, v := range valid {
		assert.True(t, validator.IsValidURL(v), "expected valid: %s", v)
	}

	invalid := []any{
		nil,
		"",
		"example.com",
		"/relative/path",
		"http://",
		"https:///nohost",
		"http://exa mple.com",
		"http:example.com",
		"   ",
		"://missing-scheme",
	}
	for _, v := range invalid {
		assert.False(t, validator.IsValidURL(v), "expected invalid: %v", v)
	}
}

type (
	salaryAmount float64
	headcount    int
	level        uint8
	numericText  string
)

func TestIsNumber(t *testing.T) {
	t.Parallel()

	var nilFloat *float64
	five := 5.0

	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "nil", input: nil, expected: false},
		{name: "empty string", input: "", expected: false},
		{name: "blank string", input: "  ", expected: false},
		{name: "integer string", input: "42", expected: true},
		{name: "decimal string", input: "-3.14", expected: true},
		{name: "padded string", input: " 7 ", expected: true},
		{name: "exponent", input: "1e3", expected: true},
		{name: "word", input: "abc", expected: false},
		{name: "mixed", input: "12abc", expected: false},
		{name: "NaN string", input: "NaN", expected: false},
		{name: "infinity string", input: "Inf", expected: false},
		{name: "int zero", input: 0, expected: true},
		{name: "uint", input: uint8(3), expected: true},
		{name: "float", input: 2.5, expected: true},
		{name: "NaN float", input: math.NaN(), expected: false},
		{name: "infinite float", input: math.Inf(1), expected: false},
		{name: "json number", input: json.Number("12.5"), expected: true},
		{name: "nil pointer", input: nilFloat, expected: false},
		{name: "pointer", input: &five, expected: true},
		{name: "bool", input: true, expected: false},
		{name: "named float", input: salaryAmount(5), expected: true},
		{name: "named int", input: headcount(3), expected: true},
		{name: "named uint", input: level(2), expected: true},
		{name: "named NaN float", input: salaryAmount(math.NaN()), expected: false},
		{name: "named numeric string", input: numericText("42"), expected: true},
		{name: "named non-numeric string", input: numericText("abc"), expected: false},
		{name: "struct", input: struct{}{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsNumber(tt.input))
		})
	}
}

func TestIsPastDateAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "date string in the past", input: "1990-05-20", expected: true},
		{name: "RFC3339 in the past", input: "2024-06-15T11:59:59Z", expected: true},
		{name: "exactly now is not past", input: now, expected: false},
		{name: "future date string", input: "2030-01-01", expected: false},
		{name: "time value in the past", input: now.Add(-time.Hour), expected: true},
		{name: "zero time", input: time.Time{}, expected: false},
		{name: "invalid string", input: "not a date", expected: false},
		{name: "impossible date", input: "2024-02-30", expected: false},
		{name: "empty string", input: "", expected: false},
		{name: "nil", input: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsPastDateAt(tt.input, now))
		})
	}
}

func TestIsPastDate(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsPastDate("2000-01-01"))
	assert.True(t, validator.IsPastDate(time.Now().Add(-time.Minute)))
	assert.False(t, validator.IsPastDate(time.Now().Add(time.Hour)))
	assert.False(t, validator.IsPastDate("garbage"))
}
