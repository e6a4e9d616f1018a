package user

// User is a row of the users table. Password always holds a bcrypt hash.
type User struct {
	UserID   string  `gorm:"column:user_id;primaryKey" json:"user_id"`
	Name     *string `gorm:"column:name" json:"name"`
	Email    *string `gorm:"column:email" json:"email"`
	Mobile   *string `gorm:"column:mobile" json:"mobile"`
	Password string  `gorm:"column:password;not null" json:"password"`
	IsAdmin  bool    `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
}

func (User) TableName() string {
	return "users"
}
