package repository

import (
	"context"

	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
