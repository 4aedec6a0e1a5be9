package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-management/internal/domain/entity"
	"clinic-management/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := entity.ParseDate(value)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{Name: "Dr A", Email: email, Password: "hash", Contact: "0700", Role: entity.RoleDoctor}
	require.NoError(t, NewUserRepository().Create(context.Background(), db, user))
	return user
}

func seedClient(t *testing.T, db *gorm.DB, email, phone string) *entity.Client {
	t.Helper()
	client := &entity.Client{
		FullName:    "Patient One",
		Email:       email,
		Phone:       phone,
		Address:     "1 Main St",
		DateOfBirth: date(t, "1990-04-12"),
		Gender:      entity.GenderFemale,
	}
	require.NoError(t, NewClientRepository().Create(context.Background(), db, client))
	return client
}

func seedProgram(t *testing.T, db *gorm.DB, active bool) *entity.Program {
	t.Helper()
	program := &entity.Program{
		Name:        "Diabetes care",
		Description: "Quarterly check-ins",
		IsActive:    &active,
		StartDate:   date(t, "2024-01-01"),
		EndDate:     date(t, "2024-12-31"),
	}
	require.NoError(t, NewProgramRepository().Create(context.Background(), db, program))
	return program
}

func TestClientRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()
	ctx := context.Background()

	client := seedClient(t, db, "p1@example.com", "0711000001")
	require.NotZero(t, client.ID)

	found, err := repo.FindByID(ctx, db, client.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Patient One", found.FullName)
	assert.Equal(t, "1990-04-12", entity.FormatDate(found.DateOfBirth))
	assert.Empty(t, found.Gender, "gender is write-only in the client projection")
	assert.Empty(t, found.Appointments)
	assert.Empty(t, found.Enrollments)

	missing, err := repo.FindByID(ctx, db, client.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClientRepository_FindAllOrderedByID(t *testing.T) {
	db := newTestDB(t)

	first := seedClient(t, db, "a@example.com", "0711000001")
	second := seedClient(t, db, "b@example.com", "0711000002")

	clients, err := NewClientRepository().FindAll(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, first.ID, clients[0].ID)
	assert.Equal(t, second.ID, clients[1].ID)
}

func TestClientRepository_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()
	ctx := context.Background()

	seedClient(t, db, "dup@example.com", "0711000001")

	err := repo.Create(ctx, db, &entity.Client{
		FullName:    "Other",
		Email:       "dup@example.com",
		Phone:       "0711000002",
		Address:     "2 Main St",
		DateOfBirth: date(t, "1991-01-01"),
		Gender:      entity.GenderMale,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clients.email")

	var count int64
	require.NoError(t, db.Model(&entity.Client{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestClientRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()
	ctx := context.Background()

	client := seedClient(t, db, "p1@example.com", "0711000001")

	affected, err := repo.Update(ctx, db, client.ID, map[string]interface{}{"address": "9 Side Rd"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	updated, err := repo.FindByID(ctx, db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "9 Side Rd", updated.Address)
	assert.Equal(t, "p1@example.com", updated.Email)

	affected, err = repo.Update(ctx, db, client.ID+100, map[string]interface{}{"address": "x"})
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.Delete(ctx, db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	gone, err := repo.FindByID(ctx, db, client.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestClientRepository_DeleteCascadesToAppointmentsAndEnrollments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	doctor := seedUser(t, db, "dr@example.com")
	client := seedClient(t, db, "p1@example.com", "0711000001")
	program := seedProgram(t, db, true)

	require.NoError(t, NewAppointmentRepository().Create(ctx, db, &entity.Appointment{
		ClientID:        client.ID,
		DoctorID:        &doctor.ID,
		AppointmentDate: date(t, "2024-05-01"),
		Description:     "checkup",
		Status:          entity.AppointmentStatusScheduled,
	}))
	require.NoError(t, NewEnrollmentRepository().Create(ctx, db, &entity.Enrollment{
		ClientID:       client.ID,
		ProgramID:      program.ID,
		EnrollmentDate: date(t, "2024-02-01"),
		Status:         entity.EnrollmentStatusActive,
	}))

	loaded, err := NewClientRepository().FindByID(ctx, db, client.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Appointments, 1)
	require.NotNil(t, loaded.Appointments[0].Doctor)
	assert.Equal(t, "Dr A", loaded.Appointments[0].Doctor.Name)
	require.Len(t, loaded.Enrollments, 1)
	require.NotNil(t, loaded.Enrollments[0].Program)
	assert.Equal(t, "Diabetes care", loaded.Enrollments[0].Program.Name)

	_, err = NewClientRepository().Delete(ctx, db, client.ID)
	require.NoError(t, err)

	var appointments, enrollments int64
	require.NoError(t, db.Model(&entity.Appointment{}).Count(&appointments).Error)
	require.NoError(t, db.Model(&entity.Enrollment{}).Count(&enrollments).Error)
	assert.Zero(t, appointments)
	assert.Zero(t, enrollments)
}

func TestProgramRepository_DeleteRestrictedWhileEnrolled(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	client := seedClient(t, db, "p1@example.com", "0711000001")
	program := seedProgram(t, db, true)
	require.NoError(t, NewEnrollmentRepository().Create(ctx, db, &entity.Enrollment{
		ClientID:       client.ID,
		ProgramID:      program.ID,
		EnrollmentDate: date(t, "2024-02-01"),
		Status:         entity.EnrollmentStatusPending,
	}))

	_, err := NewProgramRepository().Delete(ctx, db, program.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")

	still, err := NewProgramRepository().FindByID(ctx, db, program.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestEnrollmentRepository_UnknownReferenceRejected(t *testing.T) {
	db := newTestDB(t)

	err := NewEnrollmentRepository().Create(context.Background(), db, &entity.Enrollment{
		ClientID:       41,
		ProgramID:      42,
		EnrollmentDate: date(t, "2024-02-01"),
		Status:         entity.EnrollmentStatusPending,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestUserRepository_DeleteClearsDoctorOnAppointments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	doctor := seedUser(t, db, "dr@example.com")
	client := seedClient(t, db, "p1@example.com", "0711000001")
	appointment := &entity.Appointment{
		ClientID:        client.ID,
		DoctorID:        &doctor.ID,
		AppointmentDate: date(t, "2024-05-01"),
		Description:     "checkup",
		Status:          entity.AppointmentStatusScheduled,
	}
	require.NoError(t, NewAppointmentRepository().Create(ctx, db, appointment))

	affected, err := NewUserRepository().Delete(ctx, db, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	kept, err := NewAppointmentRepository().FindByID(ctx, db, appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Nil(t, kept.DoctorID)
	assert.Nil(t, kept.Doctor)
	require.NotNil(t, kept.Client)
	assert.Equal(t, client.ID, kept.Client.ID)
}

func TestUserRepository_FindByEmailIncludesPasswordOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository()

	user := seedUser(t, db, "dr@example.com")

	credentials, err := repo.FindByEmail(ctx, db, "dr@example.com")
	require.NoError(t, err)
	require.NotNil(t, credentials)
	assert.Equal(t, "hash", credentials.Password)
	assert.True(t, credentials.Active())

	detail, err := repo.FindByID(ctx, db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Password)

	unknown, err := repo.FindByEmail(ctx, db, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestStatisticsRepository_Counts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	doctor := seedUser(t, db, "dr@example.com")
	client := seedClient(t, db, "p1@example.com", "0711000001")
	seedClient(t, db, "p2@example.com", "0711000002")
	active := seedProgram(t, db, true)
	seedProgram(t, db, false)

	for _, status := range []entity.AppointmentStatus{
		entity.AppointmentStatusScheduled,
		entity.AppointmentStatusScheduled,
		entity.AppointmentStatusNoShow,
	} {
		require.NoError(t, NewAppointmentRepository().Create(ctx, db, &entity.Appointment{
			ClientID:        client.ID,
			DoctorID:        &doctor.ID,
			AppointmentDate: date(t, "2024-05-01"),
			Description:     "visit",
			Status:          status,
		}))
	}
	require.NoError(t, NewEnrollmentRepository().Create(ctx, db, &entity.Enrollment{
		ClientID:       client.ID,
		ProgramID:      active.ID,
		EnrollmentDate: date(t, "2024-02-01"),
		Status:         entity.EnrollmentStatusActive,
	}))

	repo := NewStatisticsRepository()

	clients, err := repo.CountClients(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), clients)

	total, activeCount, err := repo.CountPrograms(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), activeCount)

	appointments, err := repo.CountAppointmentsByStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"scheduled": 2, "no-show": 1}, appointments)

	enrollments, err := repo.CountEnrollmentsByStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"active": 1}, enrollments)
}

func TestAuditLogRepository_NewestFirstWithActor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAuditLogRepository()

	user := seedUser(t, db, "admin@example.com")
	require.NoError(t, repo.Create(ctx, db, &entity.AuditLog{
		UserID:   &user.ID,
		Action:   entity.AuditActionClientCreate,
		Metadata: entity.JSON{"entity": "client", "entity_id": "1"},
	}))
	require.NoError(t, repo.Create(ctx, db, &entity.AuditLog{
		Action:   entity.AuditActionClientDelete,
		Metadata: entity.JSON{"entity": "client", "entity_id": "1"},
	}))

	logs, err := repo.FindAll(ctx, db, entity.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditActionClientDelete, logs[0].Action)
	assert.Nil(t, logs[0].User)
	require.NotNil(t, logs[1].User)
	assert.Equal(t, "admin@example.com", logs[1].User.Email)
	assert.Equal(t, "client", logs[1].Metadata["entity"])

	missing, err := repo.FindByID(ctx, db, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAuditLogRepository_Filters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAuditLogRepository()

	actor := seedUser(t, db, "admin@example.com")
	entries := []*entity.AuditLog{
		{UserID: &actor.ID, Action: entity.AuditActionClientCreate, Metadata: entity.JSON{"entity": "client", "entity_id": "1"}},
		{UserID: &actor.ID, Action: entity.AuditActionClientUpdate, Metadata: entity.JSON{"entity": "client", "entity_id": "1"}},
		{Action: entity.AuditActionClientCreate, Metadata: entity.JSON{"entity": "client", "entity_id": "2"}},
		{UserID: &actor.ID, Action: entity.AuditActionProgramCreate, Metadata: entity.JSON{"entity": "program", "entity_id": "1"}},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Create(ctx, db, entry))
	}

	actions := func(filter entity.AuditLogFilter) []string {
		logs, err := repo.FindAll(ctx, db, filter)
		require.NoError(t, err)
		result := make([]string, len(logs))
		for i, log := range logs {
			result[i] = log.Action
		}
		return result
	}

	assert.Len(t, actions(entity.AuditLogFilter{}), 4)
	assert.Equal(t,
		[]string{entity.AuditActionClientUpdate, entity.AuditActionClientCreate},
		actions(entity.AuditLogFilter{Entity: "client", EntityID: 1}))
	assert.Equal(t,
		[]string{entity.AuditActionClientCreate, entity.AuditActionClientCreate},
		actions(entity.AuditLogFilter{Action: entity.AuditActionClientCreate}))
	assert.Equal(t,
		[]string{entity.AuditActionProgramCreate},
		actions(entity.AuditLogFilter{Entity: "program"}))
	assert.Len(t, actions(entity.AuditLogFilter{UserID: actor.ID}), 3)
	assert.Empty(t, actions(entity.AuditLogFilter{Entity: "client", EntityID: 99}))
}

func TestAppointmentAndEnrollmentRepository_FindByParent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	appointments := NewAppointmentRepository()
	enrollments := NewEnrollmentRepository()

	doctor := seedUser(t, db, "dr@example.com")
	first := seedClient(t, db, "p1@example.com", "0711000001")
	second := seedClient(t, db, "p2@example.com", "0711000002")
	program := seedProgram(t, db, true)

	for _, client := range []*entity.Client{first, second, first} {
		require.NoError(t, appointments.Create(ctx, db, &entity.Appointment{
			ClientID:        client.ID,
			DoctorID:        &doctor.ID,
			AppointmentDate: date(t, "2024-05-01"),
			Description:     "checkup",
			Status:          entity.AppointmentStatusScheduled,
		}))
	}
	require.NoError(t, enrollments.Create(ctx, db, &entity.Enrollment{
		ClientID:       second.ID,
		ProgramID:      program.ID,
		EnrollerID:     &doctor.ID,
		EnrollmentDate: date(t, "2024-02-01"),
		Status:         entity.EnrollmentStatusActive,
	}))

	byClient, err := appointments.FindByClientID(ctx, db, first.ID)
	require.NoError(t, err)
	require.Len(t, byClient, 2)
	assert.Less(t, byClient[0].ID, byClient[1].ID)
	require.NotNil(t, byClient[0].Client)
	assert.Equal(t, "p1@example.com", byClient[0].Client.Email)
	require.NotNil(t, byClient[0].Doctor)
	assert.Equal(t, "Dr A", byClient[0].Doctor.Name)

	byDoctor, err := appointments.FindByDoctorID(ctx, db, doctor.ID)
	require.NoError(t, err)
	assert.Len(t, byDoctor, 3)

	none, err := appointments.FindByDoctorID(ctx, db, doctor.ID+100)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	enrolled, err := enrollments.FindByProgramID(ctx, db, program.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	require.NotNil(t, enrolled[0].Program)
	assert.Equal(t, "Diabetes care", enrolled[0].Program.Name)
	assert.Nil(t, enrolled[0].EnrollerID, "enroller is not part of the enrollment projection")

	clientEnrollments, err := enrollments.FindByClientID(ctx, db, first.ID)
	require.NoError(t, err)
	assert.Empty(t, clientEnrollments)
}
