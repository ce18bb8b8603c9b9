package config

import "strings"

// Environment represents the deployment environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Production for production environment.
	Production Environment = "production"
)

// ParseEnvironment maps common spellings ("prod", "stage", "dev") to an
// Environment. Anything unrecognised is Development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool { return e == Development }
