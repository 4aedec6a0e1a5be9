package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound   = errors.New("audit log not found")
	ErrInvalidAuditFilter = errors.New("invalid audit log filter")
)

// AuditLogUsecase reads the trail written by the mutating usecases
type AuditLogUsecase interface {
	GetAuditLogs(ctx context.Context, query *dto.AuditLogQuery) ([]dto.AuditLogResponse, error)
	GetAuditLog(ctx context.Context, id int) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetAuditLogs returns the matching entries newest first. A record's history
// is entity plus entityId; the actions of one user are userId.
func (u *auditLogUsecase) GetAuditLogs(ctx context.Context, query *dto.AuditLogQuery) ([]dto.AuditLogResponse, error) {
	filter, err := auditLogFilter(query)
	if err != nil {
		return nil, err
	}

	logs, err := u.auditLogRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.WithField("filter", filter).Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogsToResponses(logs), nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, u.db, int64(id))
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}

// auditLogFilter expands a verb action against the entity and rejects
// combinations that cannot name a recorded action.
func auditLogFilter(query *dto.AuditLogQuery) (entity.AuditLogFilter, error) {
	filter := entity.AuditLogFilter{}
	if query == nil {
		return filter, nil
	}

	filter = entity.AuditLogFilter{
		Entity:   query.Entity,
		EntityID: query.EntityID,
		Action:   query.Action,
		UserID:   query.UserID,
	}

	// entity ids are only unique within one entity
	if filter.EntityID > 0 && filter.Entity == "" {
		return filter, ErrInvalidAuditFilter
	}

	if filter.Action != "" && !strings.Contains(filter.Action, ".") {
		if filter.Entity == "" {
			return filter, ErrInvalidAuditFilter
		}
		filter.Action = filter.Entity + "." + filter.Action
	}
	if filter.Action != "" && !entity.IsAuditAction(filter.Action) {
		return filter, ErrInvalidAuditFilter
	}

	return filter, nil
}
