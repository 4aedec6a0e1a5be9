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
	ErrClientNotFound    = errors.New("client not found")
	ErrClientEmailExists = errors.New("client email already exists")
	ErrClientPhoneExists = errors.New("client phone already exists")
)

type ClientUsecase interface {
	GetAllClients(ctx context.Context) ([]dto.ClientResponse, error)
	GetClient(ctx context.Context, id int) (*dto.ClientResponse, error)
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, id int, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id int) (*dto.ClientResponse, error)
}

type clientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clientRepo   repository.ClientRepository
	auditService service.AuditService
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	auditService service.AuditService,
) ClientUsecase {
	return &clientUsecase{
		db:           db,
		log:          log,
		clientRepo:   clientRepo,
		auditService: auditService,
	}
}

func (u *clientUsecase) GetAllClients(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := u.clientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all clients: %+v", err)
		return nil, err
	}

	return converter.ClientsToResponses(clients), nil
}

func (u *clientUsecase) GetClient(ctx context.Context, id int) (*dto.ClientResponse, error) {
	client, err := u.clientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find client by ID: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, err
	}

	gender := entity.Gender(req.Gender)
	if gender == "" {
		gender = entity.GenderUnspecified
	}
	if !gender.IsValid() {
		return nil, ErrInvalidEnumValue
	}

	client := &entity.Client{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: dob,
		Gender:      gender,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.clientRepo.Create(ctx, tx, client); err != nil {
		return nil, u.translateWriteError(err, "create")
	}

	created, err := u.clientRepo.FindByID(ctx, tx, client.ID)
	if err != nil {
		u.log.Warnf("Failed to reload created client: %+v", err)
		return nil, err
	}

	response := converter.ClientToResponse(created)
	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionClientCreate, "client", client.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("client", "create")

	return response, nil
}

func (u *clientUsecase) UpdateClient(ctx context.Context, id int, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	fields, err := clientUpdateFields(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.clientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find client by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrClientNotFound
	}

	affected, err := u.clientRepo.Update(ctx, tx, id, fields)
	if err != nil {
		return nil, u.translateWriteError(err, "update")
	}
	if affected == 0 {
		return nil, ErrClientNotFound
	}

	updated, err := u.clientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload updated client: %+v", err)
		return nil, err
	}

	oldValue := converter.ClientToResponse(existing)
	newValue := converter.ClientToResponse(updated)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionClientUpdate, "client", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("client", "update")

	return newValue, nil
}

// DeleteClient removes the client together with its enrollments and appointments
// and returns the client as it was before deletion.
func (u *clientUsecase) DeleteClient(ctx context.Context, id int) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.clientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find client by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrClientNotFound
	}

	affected, err := u.clientRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete client: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrClientNotFound
	}

	oldValue := converter.ClientToResponse(existing)
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionClientDelete, "client", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("client", "delete")

	return oldValue, nil
}

func (u *clientUsecase) translateWriteError(err error, operation string) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrClientEmailExists
	case isDuplicateKeyError(err, "phone"):
		return ErrClientPhoneExists
	case isCheckViolation(err):
		return ErrInvalidEnumValue
	}
	u.log.Warnf("Failed to %s client: %+v", operation, err)
	return err
}

// clientUpdateFields maps the supplied fields of req to column values
func clientUpdateFields(req *dto.UpdateClientRequest) (map[string]interface{}, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			return nil, err
		}
		fields["date_of_birth"] = dob
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		if !gender.IsValid() {
			return nil, ErrInvalidEnumValue
		}
		fields["gender"] = string(gender)
	}

	return fields, nil
}
