package usecase

import (
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_RecordHistory(t *testing.T) {
	env := newTestEnv(t)
	doctor := env.registerDoctor(t, "dr@example.com")
	ctx := asUser(doctor)

	first := env.createClient(t, ctx, "p1@example.com", "0711000001")
	env.createClient(t, ctx, "p2@example.com", "0711000002")
	_, err := env.clients.UpdateClient(ctx, first.ID, &dto.UpdateClientRequest{Address: strPtr("9 Side Rd")})
	require.NoError(t, err)

	history, err := env.auditLogs.GetAuditLogs(ctx, &dto.AuditLogQuery{Entity: "client", EntityID: first.ID})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.AuditActionClientUpdate, history[0].Action)
	assert.Equal(t, entity.AuditActionClientCreate, history[1].Action)

	updates, err := env.auditLogs.GetAuditLogs(ctx, &dto.AuditLogQuery{Entity: "client", Action: "update"})
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "9 Side Rd", updates[0].Metadata["new_value"].(map[string]interface{})["address"])

	byActor, err := env.auditLogs.GetAuditLogs(ctx, &dto.AuditLogQuery{UserID: doctor.ID})
	require.NoError(t, err)
	assert.Len(t, byActor, 4)

	none, err := env.auditLogs.GetAuditLogs(ctx, &dto.AuditLogQuery{Entity: "program"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAuditLogUsecase_RejectsAmbiguousFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := asUser(env.registerDoctor(t, "dr@example.com"))

	for name, query := range map[string]*dto.AuditLogQuery{
		"entity id without entity": {EntityID: 1},
		"verb without entity":      {Action: "update"},
		"unknown action":           {Action: "client.archive"},
		"verb not recorded":        {Entity: "program", Action: "register"},
	} {
		_, err := env.auditLogs.GetAuditLogs(ctx, query)
		assert.ErrorIs(t, err, ErrInvalidAuditFilter, name)
	}

	registered, err := env.auditLogs.GetAuditLogs(ctx, &dto.AuditLogQuery{Entity: "user", Action: "register"})
	require.NoError(t, err)
	assert.Len(t, registered, 1)
}
