package repository

import (
	"context"

	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type ProgramRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Program, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Program, error)
	Create(ctx context.Context, db *gorm.DB, program *entity.Program) error
	Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
