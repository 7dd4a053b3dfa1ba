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

type expenseStore struct {
	client *firestore.Client
}

func NewExpenseStore(client *firestore.Client) *expenseStore {
	return &expenseStore{client: client}
}

func (s *expenseStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("expenses")
}

func (s *expenseStore) Create(ctx context.Context, uid string, e *models.Expense) error {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	if _, err := s.collection(uid).Doc(e.ExpenseID).Set(ctx, e); err != nil {
		return errs.NewDatabaseError("create", "failed to create expense", err)
	}
	return nil
}

func (s *expenseStore) Get(ctx context.Context, uid, expenseID string) (*models.Expense, error) {
	doc, err := s.collection(uid).Doc(expenseID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("expense not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get expense", err)
	}
	var e models.Expense
	if err := doc.DataTo(&e); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse expense data", err)
	}
	return &e, nil
}

func (s *expenseStore) Update(ctx context.Context, uid string, e *models.Expense) error {
	e.UpdatedAt = time.Now()
	if _, err := s.collection(uid).Doc(e.ExpenseID).Set(ctx, e); err != nil {
		return errs.NewDatabaseError("update", "failed to update expense", err)
	}
	return nil
}

func (s *expenseStore) Delete(ctx context.Context, uid, expenseID string) error {
	if _, err := s.collection(uid).Doc(expenseID).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete expense", err)
	}
	return nil
}

// ListByPeriod returns a period's expenses, newest first.
func (s *expenseStore) ListByPeriod(ctx context.Context, uid, periodID string) ([]models.Expense, error) {
	docs, err := s.collection(uid).
		Where("periodId", "==", periodID).
		OrderBy("date", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list expenses", err)
	}
	expenses := make([]models.Expense, 0, len(docs))
	for _, d := range docs {
		var e models.Expense
		if err := d.DataTo(&e); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse expense data", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (s *expenseStore) CountByPeriod(ctx context.Context, uid, periodID string) (int, error) {
	docs, err := s.collection(uid).Where("periodId", "==", periodID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errs.NewDatabaseError("read", "failed to count expenses", err)
	}
	return len(docs), nil
}
