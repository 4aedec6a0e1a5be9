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
	ErrEnrollmentNotFound          = errors.New("enrollment not found")
	ErrEnrollmentReferenceNotFound = errors.New("referenced client, program or enroller does not exist")
)

type EnrollmentUsecase interface {
	GetAllEnrollments(ctx context.Context) ([]dto.EnrollmentResponse, error)
	GetEnrollment(ctx context.Context, id int) (*dto.EnrollmentResponse, error)
	GetEnrollmentsByClient(ctx context.Context, clientID int) ([]dto.EnrollmentResponse, error)
	GetEnrollmentsByProgram(ctx context.Context, programID int) ([]dto.EnrollmentResponse, error)
	CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	UpdateEnrollment(ctx context.Context, id int, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error)
	DeleteEnrollment(ctx context.Context, id int) (*dto.EnrollmentResponse, error)
}

type enrollmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	enrollmentRepo repository.EnrollmentRepository
	auditService   service.AuditService
}

func NewEnrollmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	enrollmentRepo repository.EnrollmentRepository,
	auditService service.AuditService,
) EnrollmentUsecase {
	return &enrollmentUsecase{
		db:             db,
		log:            log,
		enrollmentRepo: enrollmentRepo,
		auditService:   auditService,
	}
}

func (u *enrollmentUsecase) GetAllEnrollments(ctx context.Context) ([]dto.EnrollmentResponse, error) {
	enrollments, err := u.enrollmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all enrollments: %+v", err)
		return nil, err
	}

	return converter.EnrollmentsToResponses(enrollments), nil
}

func (u *enrollmentUsecase) GetEnrollment(ctx context.Context, id int) (*dto.EnrollmentResponse, error) {
	enrollment, err := u.enrollmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find enrollment by ID: %+v", err)
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	return converter.EnrollmentToResponse(enrollment), nil
}

func (u *enrollmentUsecase) GetEnrollmentsByClient(ctx context.Context, clientID int) ([]dto.EnrollmentResponse, error) {
	enrollments, err := u.enrollmentRepo.FindByClientID(ctx, u.db, clientID)
	if err != nil {
		u.log.WithField("client_id", clientID).Warnf("Failed to find enrollments by client: %+v", err)
		return nil, err
	}

	return converter.EnrollmentsToResponses(enrollments), nil
}

func (u *enrollmentUsecase) GetEnrollmentsByProgram(ctx context.Context, programID int) ([]dto.EnrollmentResponse, error) {
	enrollments, err := u.enrollmentRepo.FindByProgramID(ctx, u.db, programID)
	if err != nil {
		u.log.WithField("program_id", programID).Warnf("Failed to find enrollments by program: %+v", err)
		return nil, err
	}

	return converter.EnrollmentsToResponses(enrollments), nil
}

// CreateEnrollment records the authenticated user as enroller unless the request names one
func (u *enrollmentUsecase) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollmentDate, err := parseDate(req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	status := entity.EnrollmentStatus(req.Status)
	if status == "" {
		status = entity.EnrollmentStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidEnumValue
	}

	enroller := req.Enroller
	if enroller == nil {
		enroller = actorID(ctx)
	}

	enrollment := &entity.Enrollment{
		ClientID:       req.ClientID,
		ProgramID:      req.ProgramID,
		Status:         status,
		EnrollerID:     enroller,
		EnrollmentDate: enrollmentDate,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
		return nil, u.translateWriteError(err, "create")
	}

	created, err := u.enrollmentRepo.FindByID(ctx, tx, enrollment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload created enrollment: %+v", err)
		return nil, err
	}

	response := converter.EnrollmentToResponse(created)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionEnrollmentCreate, "enrollment", enrollment.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("enrollment", "create")

	return response, nil
}

func (u *enrollmentUsecase) UpdateEnrollment(ctx context.Context, id int, req *dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	fields, err := enrollmentUpdateFields(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.enrollmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find enrollment by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrEnrollmentNotFound
	}

	affected, err := u.enrollmentRepo.Update(ctx, tx, id, fields)
	if err != nil {
		return nil, u.translateWriteError(err, "update")
	}
	if affected == 0 {
		return nil, ErrEnrollmentNotFound
	}

	updated, err := u.enrollmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload updated enrollment: %+v", err)
		return nil, err
	}

	oldValue := converter.EnrollmentToResponse(existing)
	newValue := converter.EnrollmentToResponse(updated)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionEnrollmentUpdate, "enrollment", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("enrollment", "update")

	return newValue, nil
}

func (u *enrollmentUsecase) DeleteEnrollment(ctx context.Context, id int) (*dto.EnrollmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.enrollmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find enrollment by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrEnrollmentNotFound
	}

	affected, err := u.enrollmentRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete enrollment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrEnrollmentNotFound
	}

	oldValue := converter.EnrollmentToResponse(existing)
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionEnrollmentDelete, "enrollment", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("enrollment", "delete")

	return oldValue, nil
}

func (u *enrollmentUsecase) translateWriteError(err error, operation string) error {
	switch {
	case isForeignKeyError(err):
		return ErrEnrollmentReferenceNotFound
	case isCheckViolation(err):
		return ErrInvalidEnumValue
	}
	u.log.Warnf("Failed to %s enrollment: %+v", operation, err)
	return err
}

func enrollmentUpdateFields(req *dto.UpdateEnrollmentRequest) (map[string]interface{}, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	fields := make(map[string]interface{})
	if req.ClientID != nil {
		fields["client_id"] = *req.ClientID
	}
	if req.ProgramID != nil {
		fields["program_id"] = *req.ProgramID
	}
	if req.Enroller != nil {
		fields["enroller_id"] = *req.Enroller
	}
	if req.EnrollmentDate != nil {
		enrollmentDate, err := parseDate(*req.EnrollmentDate)
		if err != nil {
			return nil, err
		}
		fields["enrollment_date"] = enrollmentDate
	}
	if req.Status != nil {
		status := entity.EnrollmentStatus(*req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidEnumValue
		}
		fields["status"] = string(status)
	}

	return fields, nil
}
