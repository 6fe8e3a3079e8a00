// Package validator provides composable, schema-driven validation for form
// values such as staff records: primitive predicates, a configurable password
// policy, validator factories and a schema engine that reports one message per
// failed field.
//
// # Architecture
//
// Each source file groups one family of helpers:
//
//   - predicates.go     – pure value -> bool checks (IsEmpty, IsValidEmail, IsValidNIC, ...)
//   - password_rules.go – PasswordPolicy, CheckPassword and ValidatePassword
//   - string_rules.go   – Required, MinLength, MaxLength, Matches, OneOf
//   - format_rules.go   – Email, Phone, NIC, URL, Number
//   - date_rules.go     – PastDate, MinAge
//   - gates.go          – condition gates for cross-field validation
//   - schema.go         – Schema, ValidateField and ValidateForm
//
// A Validator is a plain value holding a CheckFunc and an optional Gate.
// Factories close over the field's display name and threshold; there is no
// registry and no hidden global state besides compiled patterns, so every
// function is safe for concurrent use.
//
// # Usage
//
//	schema := validator.NewSchema(
//	    validator.F("name", validator.Required("Name"), validator.MaxLength("Name", 50)),
//	    validator.F("email", validator.Required("Email"), validator.Email("Email")),
//	    validator.F("password",
//	        validator.Password(validator.DefaultPasswordPolicy()).
//	            When(validator.FieldEquals("mode", "create")),
//	    ),
//	)
//
//	errs := validator.ValidateForm(validator.Values{
//	    "name":  "Jane",
//	    "email": "jane@example",
//	    "mode":  "create",
//	}, schema)
//	// errs["email"] == "Email must be a valid email address"
//	// errs["password"] == "Password is required"
//
// # Error Handling
//
// Validators never panic and never return errors. A failed check yields a
// Result with Valid=false, a human readable Message and a Kind
// (KindMissingRequired, KindFormatInvalid, KindRangeInvalid,
// KindPolicyViolation). The schema engine keeps only the first failing,
// gated-in validator per field. ErrorMap implements error and matches
// ErrValidationFailed with errors.Is.
package validator
