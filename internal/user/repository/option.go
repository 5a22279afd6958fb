package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions. ExcludeID skips a
// given user — used for the "email already in use by someone else" check.
type GetOneUserOptions struct {
	ID        string
	Email     string
	ExcludeID string
}

// UpdateUserOptions holds parameters for updating an existing User.
// SetLocation guards the nullable location column so "not sent" and
// "clear" stay distinguishable.
type UpdateUserOptions struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	SetLocation  bool
	Location     *string
}
