package usecase

import (
	"context"
	"errors"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"
	"clinic-management/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound          = errors.New("appointment not found")
	ErrAppointmentReferenceNotFound = errors.New("referenced client or doctor does not exist")
)

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	GetAppointmentsByClient(ctx context.Context, clientID int) ([]dto.AppointmentResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID int) ([]dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetAppointmentsByClient is empty, not an error, for an unknown client
func (u *appointmentUsecase) GetAppointmentsByClient(ctx context.Context, clientID int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByClientID(ctx, u.db, clientID)
	if err != nil {
		u.log.WithField("client_id", clientID).Warnf("Failed to find appointments by client: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.WithField("doctor_id", doctorID).Warnf("Failed to find appointments by doctor: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}
	if !status.IsValid() {
		return nil, ErrInvalidEnumValue
	}

	doctorID := req.DoctorID
	appointment := &entity.Appointment{
		ClientID:        req.ClientID,
		DoctorID:        &doctorID,
		AppointmentDate: appointmentDate,
		Description:     req.Description,
		Status:          status,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		return nil, u.translateWriteError(err, "create")
	}

	created, err := u.appointmentRepo.FindByID(ctx, tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload created appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(created)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionAppointmentCreate, "appointment", appointment.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("appointment", "create")

	return response, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	fields, err := appointmentUpdateFields(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Update(ctx, tx, id, fields)
	if err != nil {
		return nil, u.translateWriteError(err, "update")
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	updated, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload updated appointment: %+v", err)
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(existing)
	newValue := converter.AppointmentToResponse(updated)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionAppointmentUpdate, "appointment", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("appointment", "update")

	return newValue, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(existing)
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionAppointmentDelete, "appointment", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("appointment", "delete")

	return oldValue, nil
}

func (u *appointmentUsecase) translateWriteError(err error, operation string) error {
	switch {
	case isForeignKeyError(err):
		return ErrAppointmentReferenceNotFound
	case isCheckViolation(err):
		return ErrInvalidEnumValue
	}
	u.log.Warnf("Failed to %s appointment: %+v", operation, err)
	return err
}

func appointmentUpdateFields(req *dto.UpdateAppointmentRequest) (map[string]interface{}, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	fields := make(map[string]interface{})
	if req.ClientID != nil {
		fields["client_id"] = *req.ClientID
	}
	if req.DoctorID != nil {
		fields["doctor_id"] = *req.DoctorID
	}
	if req.AppointmentDate != nil {
		appointmentDate, err := parseDate(*req.AppointmentDate)
		if err != nil {
			return nil, err
		}
		fields["appointment_date"] = appointmentDate
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidEnumValue
		}
		fields["status"] = string(status)
	}

	return fields, nil
}
