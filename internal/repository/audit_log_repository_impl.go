package repository

import (
	"context"
	"errors"
	"strconv"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(log).Error
}

// FindAll returns the matching trail newest first
func (r *auditLogRepository) FindAll(ctx context.Context, db *gorm.DB, filter entity.AuditLogFilter) ([]entity.AuditLog, error) {
	query := applyProjection(db.WithContext(ctx), entity.AuditLogDetail)

	if filter.Entity != "" {
		query = query.Where("action LIKE ?", filter.Entity+".%")
	}
	if filter.EntityID > 0 {
		query = query.Where(metadataText(db, "entity_id")+" = ?", strconv.Itoa(filter.EntityID))
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var logs []entity.AuditLog
	err := query.Order("id DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := applyProjection(db.WithContext(ctx), entity.AuditLogDetail).Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// metadataText is the SQL expression reading key from the metadata JSON as text
func metadataText(db *gorm.DB, key string) string {
	if db.Dialector.Name() == "sqlite" {
		return "json_extract(CAST(metadata AS TEXT), '$." + key + "')"
	}
	return "metadata->>'" + key + "'"
}
