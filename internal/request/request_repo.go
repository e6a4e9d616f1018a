package request

import (
	"context"

	"gorm.io/gorm"
)

const requestColumns = "id, req_datetime, req_type, date_from, date_to, time_from, time_to, user_id, reason, attachment, status"

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *Request) error
	FindAllWithName(ctx context.Context) ([]RequestWithName, error)
	FindByUser(ctx context.Context, userID string) ([]Request, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Request, error)
	Reject(ctx context.Context, id int64, reason string) (*Request, error)
	Delete(ctx context.Context, id int64) (*Request, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create inserts req and overwrites it with the stored row, including the
// generated id.
func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Raw(`
INSERT INTO requests (req_datetime, req_type, date_from, date_to, time_from, time_to, user_id, reason, attachment, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING `+requestColumns,
		req.ReqDatetime, req.ReqType, req.DateFrom, req.DateTo, req.TimeFrom, req.TimeTo,
		req.UserID, req.Reason, req.Attachment, req.Status,
	).Scan(req).Error
}

func (r *repository) FindAllWithName(ctx context.Context) ([]RequestWithName, error) {
	rows := []RequestWithName{}
	err := r.db.WithContext(ctx).Raw(`
SELECT r.id, r.req_datetime, r.req_type, r.date_from, r.date_to, r.time_from, r.time_to,
	r.user_id, r.reason, r.attachment, r.status, u.name
FROM requests r
LEFT JOIN users u ON u.user_id = r.user_id
ORDER BY r.id ASC`).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]Request, error) {
	rows := []Request{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// UpdateStatus returns gorm.ErrRecordNotFound when no row has id.
func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) (*Request, error) {
	return r.returning(ctx, `UPDATE requests SET status = ? WHERE id = ? RETURNING `+requestColumns, status, id)
}

// Reject sets the status to rejected and replaces the reason.
func (r *repository) Reject(ctx context.Context, id int64, reason string) (*Request, error) {
	return r.returning(ctx, `UPDATE requests SET status = ?, reason = ? WHERE id = ? RETURNING `+requestColumns,
		StatusRejected, reason, id)
}

func (r *repository) Delete(ctx context.Context, id int64) (*Request, error) {
	return r.returning(ctx, `DELETE FROM requests WHERE id = ? RETURNING `+requestColumns, id)
}

func (r *repository) returning(ctx context.Context, query string, args ...any) (*Request, error) {
	var req Request
	res := r.db.WithContext(ctx).Raw(query, args...).Scan(&req)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}
