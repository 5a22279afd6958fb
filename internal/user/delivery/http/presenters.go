package http

import (
	"encoding/json"

	"weather-task-tracker/internal/user"
	"weather-task-tracker/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,min=1,max=255"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// updateMeReq is a partial update. Location uses a raw message so the
// three cases — absent, null, string — stay distinguishable after decode.
type updateMeReq struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Location json.RawMessage `json:"location"`
}

func (r updateMeReq) toInput() (user.UpdateProfileInput, error) {
	input := user.UpdateProfileInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
	if len(r.Location) > 0 {
		input.LocationProvided = true
		if string(r.Location) != "null" {
			var loc string
			if err := json.Unmarshal(r.Location, &loc); err != nil {
				return input, errBadBody
			}
			input.Location = &loc
		}
	}
	return input, nil
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Location  *string           `json:"location"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Location:  u.Location,
		CreatedAt: response.DateTime(u.CreatedAt),
		UpdatedAt: response.DateTime(u.UpdatedAt),
	}
}

type authResp struct {
	User userResp `json:"user"`
}
