package service

import (
	"context"
	"strconv"

	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditSavePoint = "audit_log"

// AuditService writes audit entries inside the caller's transaction so the
// entry commits or rolls back with the change it describes.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, newValue interface{}) error {
	return s.write(ctx, tx, userID, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *int, action string, entityName string, entityID int, oldValue interface{}) error {
	return s.write(ctx, tx, userID, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, userID *int, action, entityName string, entityID int, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		UserID: userID,
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": strconv.Itoa(entityID),
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	// A failed insert must not poison the caller's transaction
	if err := tx.SavePoint(auditSavePoint).Error; err != nil {
		return err
	}
	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		tx.RollbackTo(auditSavePoint)
		s.log.WithFields(logrus.Fields{"action": action, "entity_id": entityID}).Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
