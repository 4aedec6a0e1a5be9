package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-management/config"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/infrastructure/database"
	"clinic-management/internal/repository"
	"clinic-management/internal/service"
	"clinic-management/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires every usecase against a fresh in-memory database
type testEnv struct {
	db           *gorm.DB
	sessions     service.SessionStore
	jwtService   *jwt.JWTService
	auth         AuthUsecase
	users        UserUsecase
	clients      ClientUsecase
	programs     ProgramUsecase
	enrollments  EnrollmentUsecase
	appointments AppointmentUsecase
	dashboard    DashboardUsecase
	auditLogs    AuditLogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.NewSQLiteConnection(":memory:", log)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	userRepo := repository.NewUserRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(log, auditLogRepo)
	sessions := service.NewMemorySessionStore(time.Minute)
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	return &testEnv{
		db:           db,
		sessions:     sessions,
		jwtService:   jwtService,
		auth:         NewAuthUsecase(db, log, userRepo, auditService, jwtService, sessions),
		users:        NewUserUsecase(db, log, userRepo, auditService, sessions),
		clients:      NewClientUsecase(db, log, repository.NewClientRepository(), auditService),
		programs:     NewProgramUsecase(db, log, repository.NewProgramRepository(), auditService),
		enrollments:  NewEnrollmentUsecase(db, log, repository.NewEnrollmentRepository(), auditService),
		appointments: NewAppointmentUsecase(db, log, repository.NewAppointmentRepository(), auditService),
		dashboard:    NewDashboardUsecase(db, log, repository.NewStatisticsRepository()),
		auditLogs:    NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

// asUser returns a context carrying an authenticated session for user
func asUser(user *dto.UserResponse) context.Context {
	return middleware.WithSession(context.Background(), &middleware.Session{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    entity.Role(user.Role),
		TokenID: "test-token",
	})
}

func (e *testEnv) registerDoctor(t *testing.T, email string) *dto.UserResponse {
	t.Helper()
	user, err := e.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Dr A",
		Email:    email,
		Password: "secret123",
		Contact:  "0700000000",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createClient(t *testing.T, ctx context.Context, email, phone string) *dto.ClientResponse {
	t.Helper()
	client, err := e.clients.CreateClient(ctx, &dto.CreateClientRequest{
		FullName: "Patient One",
		Email:    email,
		Phone:    phone,
		Address:  "1 Main St",
		DOB:      "1990-04-12",
	})
	require.NoError(t, err)
	return client
}

func (e *testEnv) createProgram(t *testing.T, ctx context.Context) *dto.ProgramResponse {
	t.Helper()
	program, err := e.programs.CreateProgram(ctx, &dto.CreateProgramRequest{
		Name:        "Diabetes care",
		Description: "Quarterly check-ins",
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
	})
	require.NoError(t, err)
	return program
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
