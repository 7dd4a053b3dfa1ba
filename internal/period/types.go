package period

import "time"

// ResetType selects how period boundaries are derived.
type ResetType string

const (
	// ResetFixed anchors periods on a fixed day-of-month (1-31). Days past
	// the end of a short month clamp to its last day.
	ResetFixed ResetType = "fixed"
	// ResetLastDay anchors periods on the last calendar day of each month.
	ResetLastDay ResetType = "lastDayOfMonth"
)

// ResetConfig is the per-user reset rule. Day is ignored for boundary math
// when Type is ResetLastDay but is kept for when the user switches back.
type ResetConfig struct {
	Day  int       `firestore:"day" json:"day"`
	Type ResetType `firestore:"type" json:"type"`
}

// Period is one budgeting cycle. Periods are derived on demand from a
// ResetConfig; only the two boundary periods of a reset-day change are ever
// persisted.
type Period struct {
	// ID is the canonical YYYY-MM-DD form of StartDate. Stored periods are
	// keyed by it, so the format is a round-trip contract.
	ID        string    `firestore:"id" json:"id"`
	StartDate time.Time `firestore:"startDate" json:"startDate"`
	// EndDate is inclusive, normalized to 23:59:59.999.
	EndDate time.Time `firestore:"endDate" json:"endDate"`
	// Month is the YYYY-MM of StartDate, used for display grouping.
	Month    string `firestore:"month" json:"month"`
	IsActive bool   `firestore:"isActive" json:"isActive"`

	// Transition metadata, set only on persisted boundary periods.
	IsTransition bool   `firestore:"isTransition,omitempty" json:"isTransition,omitempty"`
	ResetDay     int    `firestore:"resetDay,omitempty" json:"resetDay,omitempty"`
	Note         string `firestore:"note,omitempty" json:"note,omitempty"`
}

// Direction orders a generated batch relative to the reference date.
type Direction int

const (
	// Backward yields the reference period first, then earlier periods.
	Backward Direction = iota
	// Forward yields the reference period first, then later periods.
	Forward
)
