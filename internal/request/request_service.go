package request

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/cache"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Request, error)
	ListAll(ctx context.Context) ([]RequestWithName, error)
	ListByUser(ctx context.Context, userID string) ([]Request, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Request, error)
	Approve(ctx context.Context, id int64) (*Request, error)
	Reject(ctx context.Context, id int64, reason string) (*Request, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	now    func() time.Time
	logger *zap.Logger
}

// NewService wires the lifecycle manager. outbox and rdb are optional; without
// them no events are queued and no cache is invalidated.
func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		rdb:    rdb,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Request, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create request requested", zap.Stringp("user_id", req.UserID), zap.Stringp("req_type", req.ReqType))

	if req.ReqType != nil && !IsValidType(*req.ReqType) {
		return nil, requesterrors.ErrInvalidType
	}

	row := req.toEntity()
	err := s.inTx(ctx, func(repo Repository, outbox kafka.OutboxRepository) error {
		if err := repo.Create(ctx, row); err != nil {
			return err
		}
		return s.queueEvent(ctx, outbox, events.RequestCreated, row)
	})
	if err != nil {
		log.Warn("create request failed", zap.Error(err))
		return nil, mapCreateError(err)
	}

	cache.Invalidate(ctx, s.rdb, log, cache.StatisticsKey)
	log.Info("create request success", zap.Int64("request_id", row.ID))
	return row, nil
}

func (s *service) ListAll(ctx context.Context) ([]RequestWithName, error) {
	rows, err := s.repo.FindAllWithName(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list requests failed", zap.Error(err))
		return nil, requesterrors.ErrListRequests.WithCause(err)
	}
	return rows, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Request, error) {
	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list user requests failed", zap.String("user_id", userID), zap.Error(err))
		return nil, requesterrors.ErrListUserRequests.WithCause(err)
	}
	return rows, nil
}

// UpdateStatus overwrites the status without checking the current one.
func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (*Request, error) {
	if !IsValidStatus(status) {
		return nil, requesterrors.ErrInvalidStatus
	}
	return s.mutate(ctx, id, requesterrors.ErrUpdateRequest, events.RequestStatusChanged,
		func(repo Repository) (*Request, error) {
			return repo.UpdateStatus(ctx, id, status)
		})
}

func (s *service) Approve(ctx context.Context, id int64) (*Request, error) {
	return s.mutate(ctx, id, requesterrors.ErrApproveRequest, events.RequestStatusChanged,
		func(repo Repository) (*Request, error) {
			return repo.UpdateStatus(ctx, id, StatusApproved)
		})
}

func (s *service) Reject(ctx context.Context, id int64, reason string) (*Request, error) {
	return s.mutate(ctx, id, requesterrors.ErrRejectRequest, events.RequestStatusChanged,
		func(repo Repository) (*Request, error) {
			return repo.Reject(ctx, id, reason)
		})
}

func (s *service) Delete(ctx context.Context, id int64) error {
	_, err := s.mutate(ctx, id, requesterrors.ErrDeleteRequest, events.RequestDeleted,
		func(repo Repository) (*Request, error) {
			return repo.Delete(ctx, id)
		})
	return err
}

// mutate runs op on a single row inside a transaction together with its
// outbox event. A missing row yields ErrRequestNotFound.
func (s *service) mutate(
	ctx context.Context,
	id int64,
	fallback *apperror.AppError,
	eventType string,
	op func(repo Repository) (*Request, error),
) (*Request, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.Int64("request_id", id), zap.String("event_type", eventType))

	var row *Request
	err := s.inTx(ctx, func(repo Repository, outbox kafka.OutboxRepository) error {
		var err error
		row, err = op(repo)
		if err != nil {
			return err
		}
		return s.queueEvent(ctx, outbox, eventType, row)
	})
	if err != nil {
		mapped := mapMutationError(err, fallback)
		if errors.Is(mapped, requesterrors.ErrRequestNotFound) {
			log.Debug("request not found")
		} else {
			log.Error("request mutation failed", zap.Error(err))
		}
		return nil, mapped
	}

	cache.Invalidate(ctx, s.rdb, log, cache.StatisticsKey)
	log.Info("request mutation success", zap.String("status", row.Status))
	return row, nil
}

func (s *service) inTx(ctx context.Context, fn func(repo Repository, outbox kafka.OutboxRepository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var outbox kafka.OutboxRepository
		if s.outbox != nil {
			outbox = s.outbox.WithTx(tx)
		}
		return fn(s.repo.WithTx(tx), outbox)
	})
}

func (s *service) queueEvent(ctx context.Context, outbox kafka.OutboxRepository, eventType string, row *Request) error {
	if outbox == nil {
		return nil
	}

	traceID := contextutil.GetRequestID(ctx)
	event := events.RequestLifecycleEvent{
		EventType:  eventType,
		RequestID:  row.ID,
		UserID:     deref(row.UserID),
		ReqType:    deref(row.ReqType),
		Status:     row.Status,
		ActorID:    contextutil.GetUserID(ctx),
		TraceID:    traceID,
		OccurredAt: s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		TraceID:       traceID,
		AggregateType: "request",
		AggregateID:   strconv.FormatInt(row.ID, 10),
		EventType:     eventType,
		Topic:         events.RequestLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
