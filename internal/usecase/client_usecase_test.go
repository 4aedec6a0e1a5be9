package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUsecase_CreateThenGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createClient(t, ctx, "p1@example.com", "0711000001")
	assert.NotZero(t, created.ID)
	assert.Equal(t, entity.GenderUnspecified, storedGender(t, env, created.ID))
	assert.NotNil(t, created.Appointments)
	assert.NotNil(t, created.Enrollments)

	found, err := env.clients.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
	assert.Equal(t, "1990-04-12", found.DOB)
}

func TestClientUsecase_DuplicateEmailConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createClient(t, ctx, "dup@example.com", "0711000001")

	_, err := env.clients.CreateClient(ctx, &dto.CreateClientRequest{
		FullName: "Someone Else",
		Email:    "dup@example.com",
		Phone:    "0711000002",
		Address:  "2 Main St",
		DOB:      "1985-01-01",
	})
	assert.ErrorIs(t, err, ErrClientEmailExists)

	var count int64
	require.NoError(t, env.db.Model(&entity.Client{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestClientUsecase_DuplicatePhoneConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createClient(t, ctx, "a@example.com", "0711000001")

	_, err := env.clients.CreateClient(ctx, &dto.CreateClientRequest{
		FullName: "Someone Else",
		Email:    "b@example.com",
		Phone:    "0711000001",
		Address:  "2 Main St",
		DOB:      "1985-01-01",
	})
	assert.ErrorIs(t, err, ErrClientPhoneExists)
}

func TestClientUsecase_InvalidDate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.CreateClient(context.Background(), &dto.CreateClientRequest{
		FullName: "Patient",
		Email:    "p@example.com",
		Phone:    "0711000001",
		Address:  "1 Main St",
		DOB:      "12/04/1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestClientUsecase_EmptyUpdateRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createClient(t, ctx, "p1@example.com", "0711000001")

	_, err := env.clients.UpdateClient(ctx, created.ID, &dto.UpdateClientRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	unchanged, err := env.clients.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, unchanged)
}

func TestClientUsecase_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createClient(t, ctx, "p1@example.com", "0711000001")

	updated, err := env.clients.UpdateClient(ctx, created.ID, &dto.UpdateClientRequest{
		Address: strPtr("9 Side Rd"),
		Gender:  strPtr("female"),
	})
	require.NoError(t, err)
	assert.Equal(t, "9 Side Rd", updated.Address)
	assert.Equal(t, entity.GenderFemale, storedGender(t, env, created.ID))
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.FullName, updated.FullName)

	_, err = env.clients.UpdateClient(ctx, created.ID+100, &dto.UpdateClientRequest{Address: strPtr("x")})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientUsecase_DeleteThenGetNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createClient(t, ctx, "p1@example.com", "0711000001")

	deleted, err := env.clients.DeleteClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = env.clients.GetClient(ctx, created.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = env.clients.DeleteClient(ctx, created.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientUsecase_GetAllEmpty(t *testing.T) {
	env := newTestEnv(t)

	clients, err := env.clients.GetAllClients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestClientUsecase_MutationsAreAudited(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerDoctor(t, "admin@example.com")
	ctx := asUser(admin)

	created := env.createClient(t, ctx, "p1@example.com", "0711000001")
	_, err := env.clients.DeleteClient(ctx, created.ID)
	require.NoError(t, err)

	logs, err := env.auditLogs.GetAuditLogs(ctx, nil)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	// newest first: delete, create, register
	assert.Equal(t, entity.AuditActionClientDelete, logs[0].Action)
	assert.Equal(t, entity.AuditActionClientCreate, logs[1].Action)
	assert.Equal(t, entity.AuditActionUserRegister, logs[2].Action)
	require.NotNil(t, logs[0].User)
	assert.Equal(t, admin.ID, logs[0].User.ID)
	assert.Equal(t, "client", logs[0].Metadata["entity"])

	single, err := env.auditLogs.GetAuditLog(ctx, int(logs[1].ID))
	require.NoError(t, err)
	assert.Equal(t, entity.AuditActionClientCreate, single.Action)

	_, err = env.auditLogs.GetAuditLog(ctx, 9999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}

// storedGender reads the column directly; client responses do not carry it
func storedGender(t *testing.T, env *testEnv, id int) entity.Gender {
	t.Helper()
	var client entity.Client
	require.NoError(t, env.db.Select("gender").Where("id = ?", id).First(&client).Error)
	return client.Gender
}
