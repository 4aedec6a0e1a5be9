package repository

import (
	"context"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
)

type statisticsRepository struct{}

func NewStatisticsRepository() domainRepo.StatisticsRepository {
	return &statisticsRepository{}
}

type statusCount struct {
	Status string
	Count  int64
}

func (r *statisticsRepository) CountClients(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Client{}).Count(&total).Error
	return total, err
}

func (r *statisticsRepository) CountPrograms(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	var total, active int64
	if err := db.WithContext(ctx).Model(&entity.Program{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := db.WithContext(ctx).Model(&entity.Program{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *statisticsRepository) CountEnrollmentsByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	return countByStatus(ctx, db, &entity.Enrollment{})
}

func (r *statisticsRepository) CountAppointmentsByStatus(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	return countByStatus(ctx, db, &entity.Appointment{})
}

func countByStatus(ctx context.Context, db *gorm.DB, model interface{}) (map[string]int64, error) {
	var rows []statusCount
	err := db.WithContext(ctx).Model(model).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
