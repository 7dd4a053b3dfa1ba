package models

import (
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
)

type User struct {
	UID         string             `firestore:"uid" json:"uid"`
	Email       string             `firestore:"email" json:"email"`
	Name        string             `firestore:"name" json:"name"`
	ResetConfig period.ResetConfig `firestore:"resetConfig" json:"resetConfig"`
	CreatedAt   time.Time          `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `firestore:"updatedAt" json:"updatedAt"`
}
