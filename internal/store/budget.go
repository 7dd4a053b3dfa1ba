package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
)

type budgetStore struct {
	client *firestore.Client
}

func NewBudgetStore(client *firestore.Client) *budgetStore {
	return &budgetStore{client: client}
}

func (s *budgetStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("budgets")
}

// Get returns nil without error when no budget is set for the period; an
// unbudgeted period is a normal state, not a failure.
func (s *budgetStore) Get(ctx context.Context, uid, periodID string) (*models.Budget, error) {
	doc, err := s.collection(uid).Doc(periodID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("read", "failed to get budget", err)
	}
	var b models.Budget
	if err := doc.DataTo(&b); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse budget data", err)
	}
	return &b, nil
}

func (s *budgetStore) Set(ctx context.Context, uid string, b *models.Budget) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	if _, err := s.collection(uid).Doc(b.PeriodID).Set(ctx, b); err != nil {
		return errs.NewDatabaseError("update", "failed to set budget", err)
	}
	return nil
}
