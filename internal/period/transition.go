package period

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
)

// Impact describes what changing the reset configuration today would do to
// the currently open period.
type Impact struct {
	CurrentPeriod      Period    `json:"currentPeriod"`
	TransitionEndDate  time.Time `json:"transitionEndDate"`
	NewPeriodStartDate time.Time `json:"newPeriodStartDate"`
	WillCloseEarly     bool      `json:"willCloseEarly"`
	DaysLost           int       `json:"daysLost"`
}

// TransitionResult is the pure outcome of executing a reset-day change. The
// caller decides whether and how to persist the two boundary periods.
type TransitionResult struct {
	OriginalPeriod    Period   `json:"originalPeriod"`
	TransitionPeriod  Period   `json:"transitionPeriod"`
	NewPeriod         Period   `json:"newPeriod"`
	AffectedPeriodIDs []string `json:"affectedPeriodIds"`
	Summary           string   `json:"summary"`
}

// SafetyCheck is the advisory result of IsChangeSafe. Warnings do not block
// the change; the caller decides whether to proceed.
type SafetyCheck struct {
	IsSafe   bool     `json:"isSafe"`
	Warnings []string `json:"warnings"`
}

// ChangeHistory is an audit record of an executed reset-day change.
type ChangeHistory struct {
	ID                string      `firestore:"id" json:"id"`
	OldConfig         ResetConfig `firestore:"oldConfig" json:"oldConfig"`
	NewConfig         ResetConfig `firestore:"newConfig" json:"newConfig"`
	ChangedAt         time.Time   `firestore:"changedAt" json:"changedAt"`
	AffectedPeriodIDs []string    `firestore:"affectedPeriodIds" json:"affectedPeriodIds"`
	Reason            string      `firestore:"reason,omitempty" json:"reason,omitempty"`
}

// ValidateChange rejects out-of-range fixed reset days and no-op changes.
// ExecuteChange assumes its input already passed this check.
func ValidateChange(oldConfig, newConfig ResetConfig) error {
	if newConfig.Type == ResetFixed && (newConfig.Day < 1 || newConfig.Day > 31) {
		return errs.NewValidationError("reset day must be between 1 and 31")
	}
	if oldConfig.Type == newConfig.Type &&
		(newConfig.Type == ResetLastDay || oldConfig.Day == newConfig.Day) {
		return errs.NewValidationError("new reset configuration matches the current one")
	}
	return nil
}

// CalculateImpact computes where the transition would close the current
// period and where the first period under newConfig would begin.
//
// For a fixed reset day the boundary is this month's occurrence of the new
// reset day when it has not yet passed (strictly today.Day < newConfig.Day;
// the day itself counts as passed), otherwise next month's. Last-day configs
// always start on next month's final day.
func CalculateImpact(oldConfig, newConfig ResetConfig, today time.Time) Impact {
	current := CurrentPeriod(oldConfig, today)
	loc := today.Location()

	var newStart time.Time
	if newConfig.Type == ResetLastDay {
		newStart = LastDayOfMonth(today.Year(), today.Month()+1, loc)
	} else {
		year, month := today.Year(), today.Month()
		if today.Day() >= newConfig.Day {
			month++
		}
		days := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
		newStart = time.Date(year, month, clampDay(newConfig.Day, days), 0, 0, 0, 0, loc)
	}
	newStart = startOfDay(newStart)
	transitionEnd := endOfDay(newStart.AddDate(0, 0, -1))

	impact := Impact{
		CurrentPeriod:      current,
		TransitionEndDate:  transitionEnd,
		NewPeriodStartDate: newStart,
	}
	if transitionEnd.Before(current.EndDate) {
		impact.WillCloseEarly = true
		impact.DaysLost = daysBetween(transitionEnd, current.EndDate)
	}
	return impact
}

// ExecuteChange builds the two boundary periods of a reset-day change: the
// current period closed at the transition boundary and the first period under
// the new configuration. Historical periods are never touched; the current
// period is only shortened, never removed.
func ExecuteChange(oldConfig, newConfig ResetConfig, today time.Time) TransitionResult {
	impact := CalculateImpact(oldConfig, newConfig, today)

	transition := impact.CurrentPeriod
	transition.EndDate = impact.TransitionEndDate
	transition.IsTransition = true
	transition.Note = fmt.Sprintf("Closed early on %s: reset day changed, next period starts %s",
		impact.TransitionEndDate.Format("2 Jan 2006"),
		impact.NewPeriodStartDate.Format("2 Jan 2006"))

	start := impact.NewPeriodStartDate
	end := endOfDay(nextResetAfter(newConfig, start).AddDate(0, 0, -1))
	newPeriod := Period{
		ID:        FormatPeriodID(start),
		StartDate: start,
		EndDate:   end,
		Month:     start.Format("2006-01"),
		IsActive:  !today.Before(start) && !today.After(end),
		ResetDay:  newConfig.Day,
	}

	summary := fmt.Sprintf("New period starts %s", start.Format("2 Jan 2006"))
	if impact.WillCloseEarly {
		summary = fmt.Sprintf("Current period closes early on %s; new period starts %s",
			impact.TransitionEndDate.Format("2 Jan 2006"),
			start.Format("2 Jan 2006"))
	}

	return TransitionResult{
		OriginalPeriod:    impact.CurrentPeriod,
		TransitionPeriod:  transition,
		NewPeriod:         newPeriod,
		AffectedPeriodIDs: []string{transition.ID, newPeriod.ID},
		Summary:           summary,
	}
}

// nextResetAfter is the first reset boundary strictly after start, using the
// same clamping rule as the generator.
func nextResetAfter(cfg ResetConfig, start time.Time) time.Time {
	loc := start.Location()
	if cfg.Type == ResetLastDay {
		return LastDayOfMonth(start.Year(), start.Month()+1, loc)
	}
	year, month := start.Year(), start.Month()+1
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	return time.Date(year, month, clampDay(cfg.Day, days), 0, 0, 0, 0, loc)
}

// IsChangeSafe is an advisory check on the period being shortened. Any
// recorded expense or configured budget produces a warning but never blocks
// the change.
func IsChangeSafe(transactionCount int, budgetAmount int64) SafetyCheck {
	var warnings []string
	if transactionCount > 0 {
		warnings = append(warnings, fmt.Sprintf("%d expenses are recorded in the period being shortened", transactionCount))
	}
	if budgetAmount > 0 {
		warnings = append(warnings, fmt.Sprintf("a budget of Rp%d is set for the period being shortened", budgetAmount))
	}
	return SafetyCheck{IsSafe: len(warnings) == 0, Warnings: warnings}
}

// NewChangeHistory builds the audit record for an executed change. Storage is
// the caller's responsibility.
func NewChangeHistory(oldConfig, newConfig ResetConfig, result TransitionResult, reason string, now time.Time) ChangeHistory {
	return ChangeHistory{
		ID:                uuid.New().String(),
		OldConfig:         oldConfig,
		NewConfig:         newConfig,
		ChangedAt:         now,
		AffectedPeriodIDs: result.AffectedPeriodIDs,
		Reason:            reason,
	}
}
