package services

import (
	"fmt"
	"table_order/internal/models"
	"table_order/internal/repository"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RevenueReport sums served and paid orders by creation date.
type RevenueReport struct {
	Today        decimal.Decimal              `json:"today"`
	Last7Days    decimal.Decimal              `json:"last_7_days"`
	Last30Days   decimal.Decimal              `json:"last_30_days"`
	StatusCounts map[models.OrderStatus]int64 `json:"status_counts"`
	GeneratedAt  time.Time                    `json:"generated_at"`
}

type ReportService interface {
	Revenue(now time.Time) (*RevenueReport, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Revenue(now time.Time) (*RevenueReport, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)

	orders, err := s.reportRepo.GetSettledOrdersSince(monthAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to load settled orders: %w", err)
	}
	counts, err := s.reportRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	sumSince := func(since time.Time) decimal.Decimal {
		return lo.Reduce(orders, func(acc decimal.Decimal, order models.Order, _ int) decimal.Decimal {
			if order.CreatedAt.Before(since) {
				return acc
			}
			return acc.Add(order.Total)
		}, decimal.Zero)
	}

	return &RevenueReport{
		Today:        sumSince(today),
		Last7Days:    sumSince(weekAgo),
		Last30Days:   sumSince(monthAgo),
		StatusCounts: counts,
		GeneratedAt:  now,
	}, nil
}
