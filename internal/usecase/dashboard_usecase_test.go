package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardUsecase_GetStatistics(t *testing.T) {
	env := newTestEnv(t)
	doctor := env.registerDoctor(t, "dr@example.com")
	ctx := asUser(doctor)

	client := env.createClient(t, ctx, "p1@example.com", "0711000001")
	env.createClient(t, ctx, "p2@example.com", "0711000002")
	program := env.createProgram(t, ctx)

	_, err := env.programs.CreateProgram(ctx, &dto.CreateProgramRequest{
		Name:        "Retired",
		Description: "Closed",
		IsActive:    boolPtr(false),
		StartDate:   "2020-01-01",
		EndDate:     "2020-12-31",
	})
	require.NoError(t, err)

	for _, status := range []string{"scheduled", "completed", "cancelled"} {
		_, err := env.appointments.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
			ClientID:        client.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "2024-05-01",
			Description:     "visit",
			Status:          status,
		})
		require.NoError(t, err)
	}
	_, err = env.enrollments.CreateEnrollment(ctx, &dto.CreateEnrollmentRequest{
		ClientID:       client.ID,
		ProgramID:      program.ID,
		EnrollmentDate: "2024-02-01",
		Status:         "active",
	})
	require.NoError(t, err)

	stats, err := env.dashboard.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, &dto.DashboardStatisticsResponse{
		TotalClients:          2,
		TotalAppointments:     3,
		TotalPrograms:         2,
		TotalEnrollments:      1,
		ActivePrograms:        1,
		ScheduledAppointments: 1,
		CompletedAppointments: 1,
		CancelledAppointments: 1,
		NoShowAppointments:    0,
		ActiveEnrollments:     1,
		CompletedEnrollments:  0,
		PendingEnrollments:    0,
	}, stats)
}

func TestDashboardUsecase_EmptyDatabase(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.dashboard.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.DashboardStatisticsResponse{}, stats)
}
