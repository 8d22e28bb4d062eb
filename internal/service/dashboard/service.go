package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.Repository
}

func NewDashboardService(dashboardRepository dashboard.Repository) dashboard.Service {
	return &DashboardServiceImpl{Repository: dashboardRepository}
}

// Summary implements dashboard.Service.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.Summary, error) {
	summary, err := s.Repository.Summary(ctx, time.Now().UTC())
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to load dashboard summary: %w", err)
	}
	return summary, nil
}
