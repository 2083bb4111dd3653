package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return fmt.Sprintf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
}

// ValidateConfig checks struct constraints and the rules of the configured environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = append(errs, ValidationError{
					Field:   fe.Namespace(),
					Message: fmt.Sprintf("failed on %q constraint", fe.Tag()),
				})
			}
		} else {
			errs = append(errs, ValidationError{Field: "config", Message: err.Error()})
		}
	}

	if cfg.Database.Driver == "postgres" && cfg.Database.DSN == "" {
		if cfg.Database.Host == "" {
			errs = append(errs, ValidationError{Field: "database.host", Message: "required for postgres"})
		}
		if cfg.Database.Name == "" {
			errs = append(errs, ValidationError{Field: "database.name", Message: "required for postgres"})
		}
	}

	if cfg.RateLimit.Enabled && (cfg.RateLimit.Limit == 0 || cfg.RateLimit.Window == 0) {
		errs = append(errs, ValidationError{Field: "rate_limit", Message: "limit and window must be positive when enabled"})
	}

	if cfg.Env.IsProduction() {
		if cfg.Database.Driver != "postgres" {
			errs = append(errs, ValidationError{Field: "database.driver", Message: "production requires postgres"})
		}
		if cfg.Auth.JWTSecret == DevJWTSecret {
			errs = append(errs, ValidationError{Field: "auth.jwt_secret", Message: "development secret is not allowed in production"})
		}
		if cfg.Database.Password == "" && cfg.Database.DSN == "" {
			errs = append(errs, ValidationError{Field: "database.password", Message: "db_password secret is required"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
