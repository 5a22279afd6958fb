package user

import "time"

// --- User Domain Model ---

// User is a registered account. Location is the stored preferred place
// name; nil means "use device location".
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Location     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput is a partial update. Empty strings mean "unchanged";
// the location pair distinguishes "not sent" (LocationProvided=false) from
// "clear it" (provided, nil) from "set it" (provided, non-nil).
type UpdateProfileInput struct {
	Name             string
	Email            string
	Password         string
	LocationProvided bool
	Location         *string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User User
}

type LoginOutput struct {
	User User
}

type DetailOutput struct {
	User User
}

type UpdateProfileOutput struct {
	User User
}
