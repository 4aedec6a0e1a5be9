package repository

import (
	"context"
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Client, error) {
	var clients []entity.Client
	err := applyProjection(db.WithContext(ctx), entity.ClientDetail).Order("id").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Client, error) {
	var client entity.Client
	err := applyProjection(db.WithContext(ctx), entity.ClientDetail).Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, db *gorm.DB, client *entity.Client) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Client{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *clientRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Client{})
	return result.RowsAffected, result.Error
}
