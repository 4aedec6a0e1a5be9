package repository

import (
	"context"
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type enrollmentRepository struct{}

func NewEnrollmentRepository() domainRepo.EnrollmentRepository {
	return &enrollmentRepository{}
}

func (r *enrollmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Enrollment, error) {
	var enrollments []entity.Enrollment
	err := applyProjection(db.WithContext(ctx), entity.EnrollmentDetail).Order("id").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := applyProjection(db.WithContext(ctx), entity.EnrollmentDetail).Where("id = ?", id).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByClientID(ctx context.Context, db *gorm.DB, clientID int) ([]entity.Enrollment, error) {
	return r.findWhere(ctx, db, "client_id = ?", clientID)
}

func (r *enrollmentRepository) FindByProgramID(ctx context.Context, db *gorm.DB, programID int) ([]entity.Enrollment, error) {
	return r.findWhere(ctx, db, "program_id = ?", programID)
}

func (r *enrollmentRepository) findWhere(ctx context.Context, db *gorm.DB, condition string, value int) ([]entity.Enrollment, error) {
	enrollments := []entity.Enrollment{}
	err := applyProjection(db.WithContext(ctx), entity.EnrollmentDetail).Where(condition, value).Order("id").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) Create(ctx context.Context, db *gorm.DB, enrollment *entity.Enrollment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(enrollment).Error
}

func (r *enrollmentRepository) Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Enrollment{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *enrollmentRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Enrollment{})
	return result.RowsAffected, result.Error
}
