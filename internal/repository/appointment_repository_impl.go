package repository

import (
	"context"
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := applyProjection(db.WithContext(ctx), entity.AppointmentDetail).Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := applyProjection(db.WithContext(ctx), entity.AppointmentDetail).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByClientID(ctx context.Context, db *gorm.DB, clientID int) ([]entity.Appointment, error) {
	return r.findWhere(ctx, db, "client_id = ?", clientID)
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	return r.findWhere(ctx, db, "doctor_id = ?", doctorID)
}

func (r *appointmentRepository) findWhere(ctx context.Context, db *gorm.DB, condition string, value int) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	err := applyProjection(db.WithContext(ctx), entity.AppointmentDetail).Where(condition, value).Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Appointment{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
