package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRegex  = regexp.MustCompile(`[^0-9]`)
	legacyNICRegex = regexp.MustCompile(`^[0-9]{9}[vVxX]$`)
	modernNICRegex = regexp.MustCompile(`^[0-9]{12}$`)

	// Schemes that are meaningless without an authority component.
	hostSchemes = map[string]bool{
		"http":  true,
		"https": true,
		"ftp":   true,
		"ws":    true,
		"wss":   true,
	}

	dateLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// MinPhoneDigits is the minimum number of digits a phone number must contain.
const MinPhoneDigits = 10

// IsEmpty reports whether value carries no data.
// nil, nil pointers, blank strings, zero times and empty slices or maps are empty.
// Numbers and booleans are never empty.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return IsEmptyString(v)
	case time.Time:
		return IsDateUnset(v)
	case *time.Time:
		return v == nil || IsDateUnset(*v)
	case json.Number:
		return IsEmptyString(string(v))
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.String:
		return IsEmptyString(rv.String())
	}

	return IsEmptyString(fmt.Sprint(value))
}

// IsEmptyString reports whether s is blank after trimming whitespace.
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNumberAbsent reports whether an optional number was left unset.
// A present zero is a legitimate value.
func IsNumberAbsent(n *float64) bool {
	return n == nil
}

// IsDateUnset reports whether t is the zero time.
func IsDateUnset(t time.Time) bool {
	return t.IsZero()
}

// IsValidEmail checks for a local@domain.tld shape. It does not verify deliverability.
func IsValidEmail(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsValidPhoneNumber strips every non-digit and requires at least MinPhoneDigits digits.
// Punctuation, spaces and country-code prefixes are all accepted.
func IsValidPhoneNumber(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	return len(nonDigitRegex.ReplaceAllString(s, "")) >= MinPhoneDigits
}

// IsValidNIC accepts the legacy 9 digits + V/X format or the 12 digit format.
// Only the shape is checked.
func IsValidNIC(value any) bool {
	s, ok := stringValue(value)
	if !ok {
		return false
	}
	return legacyNICRegex.MatchString(s) || modernNICRegex.MatchString(s)
}

// IsValidURL reports whether value parses as an absolute URL.
func IsValidURL(value any) bool {
	s, ok := stringValue(value)
	s = strings.TrimSpace(s)
	if !ok || s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return u.Opaque != "" || u.Host != "" || u.Path != ""
}

// IsNumber reports whether value is, or parses to, a finite number.
func IsNumber(value any) bool {
	_, ok := numberValue(value)
	return ok
}

// IsPastDate reports whether value is a valid date strictly before now.
func IsPastDate(value any) bool {
	return IsPastDateAt(value, time.Now())
}

// IsPastDateAt reports whether value is a valid date strictly before now.
func IsPastDateAt(value any, now time.Time) bool {
	t, ok := timeValue(value)
	if !ok {
		return false
	}
	return t.Before(now)
}

// stringValue converts value into a string for pattern checks.
// nil and nil pointers yield false.
func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case []byte:
		return string(v), true
	case json.Number:
		return string(v), true
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return stringValue(rv.Elem().Interface())
	}
	return fmt.Sprint(value), true
}

// textLength counts characters, not bytes. Absent values report false.
func textLength(value any) (int, bool) {
	s, ok := stringValue(value)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(s), true
}

func numberValue(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = n
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(v).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(v).Uint()), true
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Pointer:
			if rv.IsNil() {
				return 0, false
			}
			return numberValue(rv.Elem().Interface())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return float64(rv.Uint()), true
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		case reflect.String:
			return numberValue(rv.String())
		default:
			return 0, false
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func timeValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	}

	s, ok := stringValue(value)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
