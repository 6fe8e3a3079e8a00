package staff

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/staffdesk/pkg/validator"
)

// Mode tells whether a form creates a new staff member or edits one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// ParseMode accepts "create" and "update", case-insensitively.
// An empty string means create.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeCreate:
		return ModeCreate, nil
	case ModeUpdate:
		return ModeUpdate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Options tune the staff schema.
type Options struct {
	Policy validator.PasswordPolicy
	// MinAge is the minimum age in years; zero disables the check.
	MinAge int
}

// Schema builds the staff form schema for mode.
//
// On create the password is mandatory. On update it is only checked when a
// new password or confirmation was entered.
func Schema(mode Mode, opts Options) validator.Schema {
	password := []validator.Validator{
		validator.Password(opts.Policy),
		validator.NotCommonPassword("Password"),
	}
	confirm := validator.Matches("Password confirmation", FieldPassword, "Password")

	if mode == ModeUpdate {
		entered := validator.AnyOf(
			validator.FieldNotEmpty(FieldPassword),
			validator.FieldNotEmpty(FieldPasswordConfirm),
		)
		for i := range password {
			password[i] = password[i].When(entered)
		}
		confirm = confirm.When(entered)
	}

	dob := []validator.Validator{
		validator.Required("Date of birth"),
		validator.PastDate("Date of birth"),
	}
	if opts.MinAge > 0 {
		dob = append(dob, validator.MinAge("Date of birth", opts.MinAge))
	}

	return validator.NewSchema(
		validator.F(FieldFirstName,
			validator.Required("First name"),
			validator.MinLength("First name", 2),
			validator.MaxLength("First name", 50),
		),
		validator.F(FieldLastName,
			validator.Required("Last name"),
			validator.MinLength("Last name", 2),
			validator.MaxLength("Last name", 50),
		),
		validator.F(FieldEmail, validator.Required("Email"), validator.Email("Email")),
		validator.F(FieldPhone, validator.Required("Phone number"), validator.Phone("Phone number")),
		validator.F(FieldNIC, validator.Required("NIC"), validator.NIC("NIC")),
		validator.F(FieldDateOfBirth, dob...),
		validator.F(FieldWebsite, validator.URL("Website"), validator.MaxLength("Website", 255)),
		validator.F(FieldSalary, validator.Number("Salary")),
		validator.F(FieldRole, validator.Required("Role"), validator.OneOf("Role", Roles...)),
		validator.F(FieldPassword, password...),
		validator.F(FieldPasswordConfirm, confirm),
	)
}
