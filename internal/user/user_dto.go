package user

// PublicUser is a user row without the password hash.
type PublicUser struct {
	UserID  string  `json:"user_id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Mobile  *string `json:"mobile"`
	IsAdmin bool    `json:"is_admin"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		UserID:  u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		Mobile:  u.Mobile,
		IsAdmin: u.IsAdmin,
	}
}

const (
	MsgUserDeleted  = "User deleted successfully"
	MsgAdminGranted = "User is now an admin"
	MsgAdminRevoked = "User is no longer an admin"
)
