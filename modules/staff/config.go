package staff

import "github.com/dmitrymomot/staffdesk/pkg/validator"

// Config holds env-driven staff validation settings.
type Config struct {
	MinAge   int `env:"STAFF_MIN_AGE" envDefault:"18"`
	Password validator.PasswordPolicyOverrides
}

// Options resolves the config into schema options.
func (c Config) Options() Options {
	return Options{
		Policy: c.Password.Resolve(),
		MinAge: c.MinAge,
	}
}
