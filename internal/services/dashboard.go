package services

import (
	"context"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/insights"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
)

type dashboardPeriodProvider interface {
	CurrentPeriod(ctx context.Context, uid string) (period.Period, error)
	PeriodData(ctx context.Context, uid, periodID string) (*dto.PeriodData, error)
}

type dashboardService struct {
	periods dashboardPeriodProvider
	now     func() time.Time
}

func NewDashboardService(periods dashboardPeriodProvider, loc *time.Location) *dashboardService {
	return &dashboardService{
		periods: periods,
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

// Summary assembles everything the home screen shows for the active period.
func (s *dashboardService) Summary(ctx context.Context, uid string) (*dto.DashboardSummary, error) {
	p, err := s.periods.CurrentPeriod(ctx, uid)
	if err != nil {
		return nil, err
	}
	data, err := s.periods.PeriodData(ctx, uid, p.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	elapsed := period.DaysElapsed(p, now)
	total := period.TotalDays(p)

	return &dto.DashboardSummary{
		Period:        p,
		Display:       period.FormatPeriodDisplay(p.StartDate, p.EndDate),
		TotalSpent:    data.TotalSpent,
		TotalBudget:   data.TotalBudget,
		DaysElapsed:   elapsed,
		DaysRemaining: period.DaysRemaining(p, now),
		TotalDays:     total,
		Velocity:      insights.SpendingVelocity(data.TotalBudget, data.TotalSpent, elapsed, total),
		BudgetStatus:  insights.CalculateBudgetStatus(data.TotalBudget, data.TotalSpent, elapsed, total),
		Categories:    categoryBreakdown(data),
	}, nil
}
