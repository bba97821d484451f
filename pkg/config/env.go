package config

import (
	"os"
	"strings"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// GetEnvironment reads RESUME_SERVER_ENVIRONMENT without loading the full
// configuration. Tools that start before config is loaded use it to pick a
// log format. Defaults to development.
func GetEnvironment() string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("RESUME_SERVER_ENVIRONMENT")))
	if env == "" {
		return EnvDevelopment
	}
	return env
}

// IsProductionLike reports whether env must satisfy the production rules
// enforced by LoadWithValidation.
func IsProductionLike(env string) bool {
	switch strings.ToLower(env) {
	case EnvStaging, EnvProduction:
		return true
	}
	return false
}
