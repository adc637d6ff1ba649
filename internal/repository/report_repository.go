package repository

import (
	"table_order/internal/models"
	"time"

	"gorm.io/gorm"
)

type ReportRepository interface {
	// GetSettledOrdersSince returns served and paid orders created at or after since.
	GetSettledOrdersSince(since time.Time) ([]models.Order, error)
	CountByStatus() (map[models.OrderStatus]int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetSettledOrdersSince(since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where("status = ? AND is_paid = ? AND created_at >= ?", models.OrderServed, true, since).
		Find(&orders).Error
	return orders, err
}

func (r *reportRepository) CountByStatus() (map[models.OrderStatus]int64, error) {
	var rows []struct {
		Status models.OrderStatus
		Count  int64
	}
	err := r.db.Model(&models.Order{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
