package repository

import (
	"context"

	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

// ClientRepository reads through entity.ClientDetail. FindByID returns nil, nil when absent.
// Update and Delete report the number of affected rows.
type ClientRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Client, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Client, error)
	Create(ctx context.Context, db *gorm.DB, client *entity.Client) error
	Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
