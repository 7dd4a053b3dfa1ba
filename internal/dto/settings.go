package dto

import "github.com/tegarerputra/DuitTrack-sub000/internal/period"

type ResetChangeRequest struct {
	Day  int              `json:"day"`
	Type period.ResetType `json:"type"`
	// Reason is an optional free-text note kept in the audit history.
	Reason string `json:"reason,omitempty"`
}

// ResetChangePreview shows the user what applying the change would do before
// anything is written.
type ResetChangePreview struct {
	Impact period.Impact      `json:"impact"`
	Safety period.SafetyCheck `json:"safety"`
}

// ResetChangeResult reports an applied change.
type ResetChangeResult struct {
	Transition period.TransitionResult `json:"transition"`
	History    period.ChangeHistory    `json:"history"`
}
