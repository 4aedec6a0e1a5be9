package usecase

import (
	"context"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetStatistics(ctx context.Context) (*dto.DashboardStatisticsResponse, error)
}

type dashboardUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	statisticsRepo repository.StatisticsRepository
}

func NewDashboardUsecase(db *gorm.DB, log *logrus.Logger, statisticsRepo repository.StatisticsRepository) DashboardUsecase {
	return &dashboardUsecase{
		db:             db,
		log:            log,
		statisticsRepo: statisticsRepo,
	}
}

// GetStatistics runs the four independent counts concurrently; the first
// failure cancels the rest.
func (u *dashboardUsecase) GetStatistics(ctx context.Context) (*dto.DashboardStatisticsResponse, error) {
	var (
		clients        int64
		programs       int64
		activePrograms int64
		enrollments    map[string]int64
		appointments   map[string]int64
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		var err error
		clients, err = u.statisticsRepo.CountClients(ctx, u.db)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		programs, activePrograms, err = u.statisticsRepo.CountPrograms(ctx, u.db)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		enrollments, err = u.statisticsRepo.CountEnrollmentsByStatus(ctx, u.db)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		appointments, err = u.statisticsRepo.CountAppointmentsByStatus(ctx, u.db)
		return err
	})

	if err := p.Wait(); err != nil {
		u.log.Warnf("Failed to compute dashboard statistics: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatisticsResponse{
		TotalClients:          clients,
		TotalAppointments:     sum(appointments),
		TotalPrograms:         programs,
		TotalEnrollments:      sum(enrollments),
		ActivePrograms:        activePrograms,
		ScheduledAppointments: appointments[string(entity.AppointmentStatusScheduled)],
		CompletedAppointments: appointments[string(entity.AppointmentStatusCompleted)],
		CancelledAppointments: appointments[string(entity.AppointmentStatusCancelled)],
		NoShowAppointments:    appointments[string(entity.AppointmentStatusNoShow)],
		ActiveEnrollments:     enrollments[string(entity.EnrollmentStatusActive)],
		CompletedEnrollments:  enrollments[string(entity.EnrollmentStatusCompleted)],
		PendingEnrollments:    enrollments[string(entity.EnrollmentStatusPending)],
	}, nil
}

func sum(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}
