package auth

import (
	"bytes"
	"encoding/json"

	"go-leave/internal/user"
)

// FlexBool accepts JSON true or the string "true" as true. Anything else,
// including "TRUE" or 1, decodes as false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("true")) {
		*b = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == "true" {
		*b = true
		return nil
	}
	*b = false
	return nil
}

type SignupRequest struct {
	UserID   string   `json:"user_id"`
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Mobile   *string  `json:"mobile"`
	Password string   `json:"password"`
	IsAdmin  FlexBool `json:"is_admin"`
}

type SigninRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	UserID      string `json:"user_id"`
	NewPassword string `json:"newPassword"`
}

type SigninResponse struct {
	Token string          `json:"token"`
	User  user.PublicUser `json:"user"`
}

const MsgPasswordUpdated = "Password updated successfully"
