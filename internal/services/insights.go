package services

import (
	"context"
	"sort"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/insights"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
)

type insightsPeriodProvider interface {
	PeriodByID(ctx context.Context, uid, periodID string) (period.Period, error)
	PeriodForDate(ctx context.Context, uid string, date time.Time) (period.Period, error)
	PeriodData(ctx context.Context, uid, periodID string) (*dto.PeriodData, error)
}

type insightsService struct {
	periods insightsPeriodProvider
	now     func() time.Time
}

func NewInsightsService(periods insightsPeriodProvider, loc *time.Location) *insightsService {
	return &insightsService{
		periods: periods,
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

// PeriodInsights runs every analysis over one period's bundle.
func (s *insightsService) PeriodInsights(ctx context.Context, uid, periodID string) (*dto.PeriodInsights, error) {
	p, err := s.periods.PeriodByID(ctx, uid, periodID)
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

	entries := make([]insights.ExpenseEntry, 0, len(data.Expenses))
	for _, e := range data.Expenses {
		entries = append(entries, insights.ExpenseEntry{Amount: e.Amount, Date: e.Date})
	}

	return &dto.PeriodInsights{
		PeriodID:     p.ID,
		DaysElapsed:  elapsed,
		TotalDays:    total,
		Velocity:     insights.SpendingVelocity(data.TotalBudget, data.TotalSpent, elapsed, total),
		BudgetStatus: insights.CalculateBudgetStatus(data.TotalBudget, data.TotalSpent, elapsed, total),
		Categories:   categoryBreakdown(data),
		Patterns:     insights.AnalyzePatterns(entries, now),
	}, nil
}

// Comparison sets a period against the one immediately before it.
func (s *insightsService) Comparison(ctx context.Context, uid, periodID string) (*dto.PeriodComparisonResult, error) {
	p, err := s.periods.PeriodByID(ctx, uid, periodID)
	if err != nil {
		return nil, err
	}
	previous, err := s.periods.PeriodForDate(ctx, uid, p.StartDate.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	current, err := s.periods.PeriodData(ctx, uid, p.ID)
	if err != nil {
		return nil, err
	}
	prior, err := s.periods.PeriodData(ctx, uid, previous.ID)
	if err != nil {
		return nil, err
	}

	currentByCat := spentByCategory(current.Expenses)
	priorByCat := spentByCategory(prior.Expenses)

	categories := make([]insights.CategoryComparison, 0, len(currentByCat))
	for _, category := range categoryUnion(currentByCat, priorByCat) {
		categories = append(categories, insights.CompareCategory(category, currentByCat[category], priorByCat[category]))
	}

	return &dto.PeriodComparisonResult{
		PeriodID:         p.ID,
		PreviousPeriodID: previous.ID,
		Overall:          insights.ComparePeriods(current.TotalSpent, prior.TotalSpent),
		Categories:       categories,
	}, nil
}

// categoryBreakdown grades every category that has a budget or spending.
// Unbudgeted categories still appear, graded against a zero budget.
func categoryBreakdown(data *dto.PeriodData) []insights.CategoryAnalysis {
	spent := spentByCategory(data.Expenses)

	var budgets map[string]int64
	if data.Budget != nil {
		budgets = data.Budget.Categories
	}

	names := make(map[string]struct{}, len(spent)+len(budgets))
	for c := range spent {
		names[c] = struct{}{}
	}
	for c := range budgets {
		names[c] = struct{}{}
	}

	analyses := make([]insights.CategoryAnalysis, 0, len(names))
	for c := range names {
		analyses = append(analyses, insights.AnalyzeCategory(c, budgets[c], spent[c]))
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].Category < analyses[j].Category
	})
	return analyses
}

func spentByCategory(expenses []models.Expense) map[string]int64 {
	totals := make(map[string]int64, len(expenses))
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

func categoryUnion(a, b map[string]int64) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for c := range a {
		seen[c] = struct{}{}
	}
	for c := range b {
		seen[c] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for c := range seen {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}
