package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
)

// periodStore persists the boundary periods of reset-day changes. Ordinary
// periods are derived on demand and never stored; only a transition writes
// documents here.
type periodStore struct {
	client *firestore.Client
}

func NewPeriodStore(client *firestore.Client) *periodStore {
	return &periodStore{client: client}
}

func (s *periodStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("periods")
}

// SaveTransition writes both boundary periods of a change in one batch. The
// write is idempotent: re-running the same transition sets the same two
// documents, so a failed attempt can simply be retried.
func (s *periodStore) SaveTransition(ctx context.Context, uid string, transition, newPeriod period.Period) error {
	bw := s.client.BulkWriter(ctx)

	jobs := make([]*firestore.BulkWriterJob, 0, 2)
	for _, p := range []period.Period{transition, newPeriod} {
		job, err := bw.Set(s.collection(uid).Doc(p.ID), p)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("create", "failed to schedule period write", err)
		}
		jobs = append(jobs, job)
	}

	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("create", "failed to save transition periods", err)
		}
	}
	return nil
}

func (s *periodStore) Get(ctx context.Context, uid, periodID string) (*period.Period, error) {
	doc, err := s.collection(uid).Doc(periodID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errs.NewDatabaseError("read", "failed to get period record", err)
	}
	var p period.Period
	if err := doc.DataTo(&p); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse period record", err)
	}
	return &p, nil
}

// List returns every persisted period record, newest first.
func (s *periodStore) List(ctx context.Context, uid string) ([]period.Period, error) {
	docs, err := s.collection(uid).OrderBy("startDate", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list period records", err)
	}
	periods := make([]period.Period, 0, len(docs))
	for _, d := range docs {
		var p period.Period
		if err := d.DataTo(&p); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse period record", err)
		}
		periods = append(periods, p)
	}
	return periods, nil
}
