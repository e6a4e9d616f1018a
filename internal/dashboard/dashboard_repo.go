package dashboard

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CountRequests(ctx context.Context) ([]GroupCount, error)
	CountUsers(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountRequests(ctx context.Context) ([]GroupCount, error) {
	rows := []GroupCount{}
	err := r.db.WithContext(ctx).Raw(`
SELECT req_type, status, COUNT(*) AS count
FROM requests
GROUP BY req_type, status`).Scan(&rows).Error
	return rows, err
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("users").Count(&n).Error
	return n, err
}
