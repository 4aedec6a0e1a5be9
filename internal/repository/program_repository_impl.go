package repository

import (
	"context"
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type programRepository struct{}

func NewProgramRepository() domainRepo.ProgramRepository {
	return &programRepository{}
}

func (r *programRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Program, error) {
	var programs []entity.Program
	err := applyProjection(db.WithContext(ctx), entity.ProgramDetail).Order("id").Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Program, error) {
	var program entity.Program
	err := applyProjection(db.WithContext(ctx), entity.ProgramDetail).Where("id = ?", id).First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) Create(ctx context.Context, db *gorm.DB, program *entity.Program) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(program).Error
}

func (r *programRepository) Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Program{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *programRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Program{})
	return result.RowsAffected, result.Error
}
