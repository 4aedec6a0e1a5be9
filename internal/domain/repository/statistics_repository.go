package repository

import (
	"context"

	"gorm.io/gorm"
)

// StatisticsRepository runs the read-only counts behind the dashboard.
// Grouped counts are keyed by status value; statuses with no rows are absent.
type StatisticsRepository interface {
	CountClients(ctx context.Context, db *gorm.DB) (int64, error)
	CountPrograms(ctx context.Context, db *gorm.DB) (total int64, active int64, err error)
	CountEnrollmentsByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error)
	CountAppointmentsByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error)
}
