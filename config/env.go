package config

import (
	"os"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ParseEnvironment maps a free-form value onto a known environment,
// defaulting to development.
func ParseEnvironment(value string) Environment {
	switch Environment(value) {
	case Production, Test, CI:
		return Environment(value)
	default:
		return Development
	}
}

// IsProduction reports whether the loaded configuration targets production
func (e Environment) IsProduction() bool {
	return e == Production
}

// UsesLocalDefaults reports whether insecure development defaults may be
// filled in for missing secrets.
func (e Environment) UsesLocalDefaults() bool {
	return e == Development || e == Test
}
