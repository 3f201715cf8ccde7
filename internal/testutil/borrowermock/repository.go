package borrowermock

import (
	"context"
	"errors"

	domain "collateralbook/internal/domain/borrower"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("borrowermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, b *domain.Borrower) error
	GetByBorrowerIDFn   func(ctx context.Context, borrowerID, createdBy string) (*domain.Borrower, error)
	ListFn              func(ctx context.Context, q domain.ListQuery) ([]domain.Borrower, error)
	ListByBorrowerIDsFn func(ctx context.Context, borrowerIDs []string, createdBy string) ([]domain.Borrower, error)
	SaveFn              func(ctx context.Context, b *domain.Borrower) error
	DeleteFn            func(ctx context.Context, b *domain.Borrower) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBorrowerID(ctx context.Context, borrowerID, createdBy string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID, createdBy)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, q domain.ListQuery) ([]domain.Borrower, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBorrowerIDs(ctx context.Context, borrowerIDs []string, createdBy string) ([]domain.Borrower, error) {
	if m.ListByBorrowerIDsFn != nil {
		return m.ListByBorrowerIDsFn(ctx, borrowerIDs, createdBy)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, b *domain.Borrower) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, b)
	}
	return nil
}
