package staff

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrymomot/staffdesk/pkg/sanitizer"
	"github.com/dmitrymomot/staffdesk/pkg/validator"
)

// Field names shared by the form, the schema and error maps.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldNIC             = "nic"
	FieldDateOfBirth     = "date_of_birth"
	FieldWebsite         = "website"
	FieldSalary          = "salary"
	FieldRole            = "role"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
)

// Roles a staff member can be assigned.
var Roles = []string{"admin", "manager", "staff"}

// Form is the raw staff record as submitted by the admin UI. Every field is
// kept as text so malformed input reaches the validators unchanged.
type Form struct {
	FirstName       string `json:"first_name" form:"first_name"`
	LastName        string `json:"last_name" form:"last_name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	NIC             string `json:"nic" form:"nic"`
	DateOfBirth     string `json:"date_of_birth" form:"date_of_birth"`
	Website         string `json:"website" form:"website"`
	Salary          Amount `json:"salary" form:"salary"`
	Role            string `json:"role" form:"role"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
}

// Values returns the sanitized form as a validator value set.
// Passwords are passed through untouched.
func (f Form) Values() validator.Values {
	return validator.Values{
		FieldFirstName:       sanitizer.PersonName(f.FirstName),
		FieldLastName:        sanitizer.PersonName(f.LastName),
		FieldEmail:           sanitizer.NormalizeEmail(f.Email),
		FieldPhone:           sanitizer.SingleLine(f.Phone),
		FieldNIC:             sanitizer.NormalizeNIC(f.NIC),
		FieldDateOfBirth:     sanitizer.Trim(f.DateOfBirth),
		FieldWebsite:         sanitizer.Trim(f.Website),
		FieldSalary:          sanitizer.Trim(string(f.Salary)),
		FieldRole:            sanitizer.TrimToLower(f.Role),
		FieldPassword:        f.Password,
		FieldPasswordConfirm: f.PasswordConfirm,
	}
}

// Amount is a numeric form value that accepts a JSON string or any other
// JSON literal. Non-string literals keep their raw text, so `50000`,
// `"50000"` and `true` all reach the Number rule.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(data)
	}
	return nil
}
