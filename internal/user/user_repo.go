package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, userID string) (*User, error)
	Delete(ctx context.Context, userID string) (bool, error)
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error
	UpdatePassword(ctx context.Context, userID, hash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts u and reads back every column, so database defaults are
// reflected in u.
func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).
		Raw(`INSERT INTO users (user_id, name, email, mobile, password, is_admin)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING user_id, name, email, mobile, password, is_admin`,
			nullable(u.UserID), u.Name, u.Email, u.Mobile, u.Password, u.IsAdmin).
		Scan(u).Error
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).Order("user_id ASC").Find(&users).Error
	return users, err
}

// FindByID returns gorm.ErrRecordNotFound when no user matches.
func (r *repository) FindByID(ctx context.Context, userID string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Delete(ctx context.Context, userID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("user_id = ?", userID).
		Update("is_admin", isAdmin).Error
}

func (r *repository) UpdatePassword(ctx context.Context, userID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("user_id = ?", userID).
		Update("password", hash).Error
}

// nullable turns an absent key into SQL NULL so NOT NULL constraints fire.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
