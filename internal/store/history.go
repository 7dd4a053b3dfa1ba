package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
)

// historyStore keeps the audit trail of reset-day changes.
type historyStore struct {
	client *firestore.Client
}

func NewHistoryStore(client *firestore.Client) *historyStore {
	return &historyStore{client: client}
}

func (s *historyStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("reset_history")
}

func (s *historyStore) Append(ctx context.Context, uid string, h period.ChangeHistory) error {
	if _, err := s.collection(uid).Doc(h.ID).Create(ctx, h); err != nil {
		return errs.NewDatabaseError("create", "failed to append reset history", err)
	}
	return nil
}

func (s *historyStore) List(ctx context.Context, uid string) ([]period.ChangeHistory, error) {
	docs, err := s.collection(uid).OrderBy("changedAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list reset history", err)
	}
	records := make([]period.ChangeHistory, 0, len(docs))
	for _, d := range docs {
		var h period.ChangeHistory
		if err := d.DataTo(&h); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse reset history", err)
		}
		records = append(records, h)
	}
	return records, nil
}
