package repository

import (
	"context"

	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindByClientID(ctx context.Context, db *gorm.DB, clientID int) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.Appointment, error)
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Update(ctx context.Context, db *gorm.DB, id int, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
