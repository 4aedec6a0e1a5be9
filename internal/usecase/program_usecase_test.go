package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramUsecase_CreateDefaultsActive(t *testing.T) {
	env := newTestEnv(t)

	program := env.createProgram(t, context.Background())
	assert.True(t, program.IsActive)
	assert.Equal(t, "2024-01-01", program.StartDate)
	assert.Equal(t, "2024-12-31", program.EndDate)
}

func TestProgramUsecase_UpdateDeactivates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	program := env.createProgram(t, ctx)

	updated, err := env.programs.UpdateProgram(ctx, program.ID, &dto.UpdateProgramRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, program.Name, updated.Name)

	_, err = env.programs.UpdateProgram(ctx, program.ID, &dto.UpdateProgramRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestProgramUsecase_DeleteInUse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.createClient(t, ctx, "p1@example.com", "0711000001")
	program := env.createProgram(t, ctx)
	_, err := env.enrollments.CreateEnrollment(ctx, &dto.CreateEnrollmentRequest{
		ClientID:       client.ID,
		ProgramID:      program.ID,
		EnrollmentDate: "2024-02-01",
	})
	require.NoError(t, err)

	_, err = env.programs.DeleteProgram(ctx, program.ID)
	assert.ErrorIs(t, err, ErrProgramInUse)

	_, err = env.programs.GetProgram(ctx, program.ID)
	assert.NoError(t, err)
}

func TestProgramUsecase_DeleteThenGetNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	program := env.createProgram(t, ctx)

	_, err := env.programs.DeleteProgram(ctx, program.ID)
	require.NoError(t, err)

	_, err = env.programs.GetProgram(ctx, program.ID)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}
