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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type UserUsecase interface {
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id int) (*dto.UserResponse, error)
	GetUserAppointments(ctx context.Context, id int) ([]dto.UserAppointmentResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id int) (*dto.UserResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
	sessionStore service.SessionStore
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	sessionStore service.SessionStore,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
		sessionStore: sessionStore,
	}
}

func (u *userUsecase) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetUser(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// GetUserAppointments lists the appointments the user attends as doctor
func (u *userUsecase) GetUserAppointments(ctx context.Context, id int) ([]dto.UserAppointmentResponse, error) {
	user, err := u.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Appointments, nil
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user, err := newUser(req.Name, req.Email, req.Password, req.Contact, req.Role, req.IsActive)
	if err != nil {
		u.log.Warnf("Failed to prepare user: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	response, err := insertUser(ctx, tx, u.userRepo, user)
	if err != nil {
		if !errors.Is(err, ErrEmailAlreadyExists) {
			u.log.Warnf("Failed to create user: %+v", err)
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorID(ctx), entity.AuditActionUserCreate, "user", user.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("user", "create")

	return response, nil
}

// UpdateUser applies the supplied fields. Changing credentials, role or
// deactivating the account revokes every open session of that user.
func (u *userUsecase) UpdateUser(ctx context.Context, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	fields, err := userUpdateFields(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	affected, err := u.userRepo.Update(ctx, tx, id, fields)
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isCheckViolation(err) {
			return nil, ErrInvalidEnumValue
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrUserNotFound
	}

	updated, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload updated user: %+v", err)
		return nil, err
	}

	oldValue := converter.UserToResponse(existing)
	newValue := converter.UserToResponse(updated)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionUserUpdate, "user", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("user", "update")

	if revokesSessions(req) {
		u.revokeSessions(ctx, id)
	}

	return newValue, nil
}

// DeleteUser removes the user; their appointments and enrollments keep existing without a doctor or enroller
func (u *userUsecase) DeleteUser(ctx context.Context, id int) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	affected, err := u.userRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrUserNotFound
	}

	oldValue := converter.UserToResponse(existing)
	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionUserDelete, "user", id, oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("user", "delete")

	u.revokeSessions(ctx, id)

	return oldValue, nil
}

func (u *userUsecase) revokeSessions(ctx context.Context, userID int) {
	if err := u.sessionStore.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke sessions of user %d: %+v", userID, err)
	}
}

func revokesSessions(req *dto.UpdateUserRequest) bool {
	return req.Password != nil || req.Email != nil || req.Role != nil ||
		(req.IsActive != nil && !*req.IsActive)
}

// newUser validates the role and hashes the password of a user about to be inserted
func newUser(name, email, password, contact, role string, isActive *bool) (*entity.User, error) {
	userRole := entity.Role(role)
	if userRole == "" {
		userRole = entity.RoleDoctor
	}
	if !userRole.IsValid() {
		return nil, ErrInvalidEnumValue
	}

	active := true
	if isActive != nil {
		active = *isActive
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Contact:  contact,
		Role:     userRole,
		IsActive: &active,
	}, nil
}

// insertUser creates user inside tx and reloads it through the detail projection
func insertUser(ctx context.Context, tx *gorm.DB, userRepo repository.UserRepository, user *entity.User) (*dto.UserResponse, error) {
	if err := userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	created, err := userRepo.FindByID(ctx, tx, user.ID)
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(created), nil
}

func userUpdateFields(req *dto.UpdateUserRequest) (map[string]interface{}, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Contact != nil {
		fields["contact"] = *req.Contact
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		if !role.IsValid() {
			return nil, ErrInvalidEnumValue
		}
		fields["role"] = string(role)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashedPassword)
	}

	return fields, nil
}
