package service

import (
	"context"

	"assessment-portal/internal/database"
)

type StatsStore interface {
	GetDashboardStats(ctx context.Context) (*database.DashboardStats, error)
}

type DashboardService struct {
	store StatsStore
}

func NewDashboardService(store StatsStore) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) Stats(ctx context.Context) (*database.DashboardStats, error) {
	return s.store.GetDashboardStats(ctx)
}
