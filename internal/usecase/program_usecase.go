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
	ErrProgramNotFound = errors.New("program not found")
	ErrProgramInUse    = errors.New("program still has enrollments")
)

type ProgramUsecase interface {
	GetAllPrograms(ctx context.Context) ([]dto.ProgramResponse, error)
	GetProgram(ctx context.Context, id int) (*dto.ProgramResponse, error)
	CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error)
	UpdateProgram(ctx context.Context, id int, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error)
	DeleteProgram(ctx context.Context, id int) (*dto.ProgramResponse, error)
}

type programUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	programRepo  repository.ProgramRepository
	auditService service.AuditService
}

func NewProgramUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	programRepo repository.ProgramRepository,
	auditService service.AuditService,
) ProgramUsecase {
	return &programUsecase{
		db:           db,
		log:          log,
		programRepo:  programRepo,
		auditService: auditService,
	}
}

func (u *programUsecase) GetAllPrograms(ctx context.Context) ([]dto.ProgramResponse, error) {
	programs, err := u.programRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all programs: %+v", err)
		return nil, err
	}

	return converter.ProgramsToResponses(programs), nil
}

func (u *programUsecase) GetProgram(ctx context.Context, id int) (*dto.ProgramResponse, error) {
	program, err := u.programRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find program by ID: %+v", err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	return converter.ProgramToResponse(program), nil
}

func (u *programUsecase) CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	program := &entity.Program{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    &isActive,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.programRepo.Create(ctx, tx, program); err != nil {
		u.log.Warnf("Failed to create program: %+v", err)
		return nil, err
	}

	created, err := u.programRepo.FindByID(ctx, tx, program.ID)
	if err != nil {
		u.log.Warnf("Failed to reload created program: %+v", err)
		return nil, err
	}

	response := converter.ProgramToResponse(created)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionProgramCreate, "program", program.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("program", "create")

	return response, nil
}

func (u *programUsecase) UpdateProgram(ctx context.Context, id int, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	fields, err := programUpdateFields(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.programRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find program by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrProgramNotFound
	}

	affected, err := u.programRepo.Update(ctx, tx, id, fields)
	if err != nil {
		u.log.Warnf("Failed to update program: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProgramNotFound
	}

	updated, err := u.programRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload updated program: %+v", err)
		return nil, err
	}

	oldValue := converter.ProgramToResponse(existing)
	newValue := converter.ProgramToResponse(updated)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionProgramUpdate, "program", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("program", "update")

	return newValue, nil
}

// DeleteProgram refuses to remove a program that enrollments still reference
func (u *programUsecase) DeleteProgram(ctx context.Context, id int) (*dto.ProgramResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.programRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find program by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrProgramNotFound
	}

	affected, err := u.programRepo.Delete(ctx, tx, id)
	if err != nil {
		if isForeignKeyError(err) {
			return nil, ErrProgramInUse
		}
		u.log.Warnf("Failed to delete program: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProgramNotFound
	}

	oldValue := converter.ProgramToResponse(existing)
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionProgramDelete, "program", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("program", "delete")

	return oldValue, nil
}

func programUpdateFields(req *dto.UpdateProgramRequest) (map[string]interface{}, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		fields["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		fields["end_date"] = endDate
	}

	return fields, nil
}
