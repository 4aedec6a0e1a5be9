package repository

import (
	"context"

	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Enrollment, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Enrollment, error)
	FindByClientID(ctx context.Context, db *gorm.DB, clientID int) ([]entity.Enrollment, error)
	FindByProgramID(ctx context.Context, db *gorm.DB, programID int) ([]entity.Enrollment, error)
	Create(ctx context.Context, db *gorm.DB, enrollment *entity.Enrollment) error
	Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
