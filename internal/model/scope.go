package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity resolved from the session cookie.
// A zero Scope means the request is anonymous.
type Scope struct {
	UserID string
}

// Authenticated reports whether the scope belongs to a logged-in user.
func (s Scope) Authenticated() bool {
	return s.UserID != ""
}
