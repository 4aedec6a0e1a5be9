package repository

import (
	"context"
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := applyProjection(db.WithContext(ctx), entity.UserDetail).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	var user entity.User
	err := applyProjection(db.WithContext(ctx), entity.UserDetail).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail loads credentials for login; it is the only read that includes the password hash.
func (r *userRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := applyProjection(db.WithContext(ctx), entity.UserCredentials).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *userRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	return result.RowsAffected, result.Error
}
