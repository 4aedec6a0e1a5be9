package usecase

import (
	"context"
	"errors"
	"sync"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"
	"clinic-management/pkg/jwt"
	"clinic-management/pkg/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("account is deactivated")
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// timingGuardHash is compared against when the email is unknown so both
// failure paths cost one bcrypt comparison.
func timingGuardHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("clinic-timing-guard"), bcrypt.DefaultCost)
	})
	return dummyHash
}

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID int, tokenID string) error
	GetCurrentUser(ctx context.Context, userID int) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	sessionStore service.SessionStore,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := newUser(req.Name, req.Email, req.Password, req.Contact, string(entity.RoleDoctor), nil)
	if err != nil {
		u.log.Warnf("Failed to prepare user: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	response, err := insertUser(ctx, tx, u.userRepo, user)
	if err != nil {
		if !errors.Is(err, ErrEmailAlreadyExists) {
			u.log.Warnf("Failed to register user: %+v", err)
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID, response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	metrics.RecordMutation("user", "register")

	return response, nil
}

// Login never reveals whether the email exists: an unknown email and a wrong
// password produce the same error after the same amount of hashing work.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(timingGuardHash(), []byte(req.Password))
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginFailure).Inc()
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginFailure).Inc()
		return nil, ErrInvalidCredentials
	}

	if !user.Active() {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginInactive).Inc()
		return nil, ErrUserInactive
	}

	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.sessionStore.Save(ctx, user.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	u.log.WithField("user_id", user.ID).Info("User logged in")

	return converter.UserToLoginResponse(user, token), nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int, tokenID string) error {
	if err := u.sessionStore.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
