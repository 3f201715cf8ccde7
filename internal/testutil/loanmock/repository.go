package loanmock

import (
	"context"
	"errors"

	domain "collateralbook/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn        func(ctx context.Context, loanID, createdBy string) (*domain.Loan, error)
	ListFn               func(ctx context.Context, q domain.ListQuery) ([]domain.Loan, error)
	ListByLoanIDsFn      func(ctx context.Context, loanIDs []string, createdBy string) ([]domain.Loan, error)
	ListByBorrowerIDFn   func(ctx context.Context, borrowerID, createdBy string) ([]domain.Loan, error)
	SaveFn               func(ctx context.Context, l *domain.Loan) error
	DeleteFn             func(ctx context.Context, l *domain.Loan) error
	DeleteByBorrowerIDFn func(ctx context.Context, borrowerID, createdBy string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID, createdBy string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID, createdBy)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, q domain.ListQuery) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByLoanIDs(ctx context.Context, loanIDs []string, createdBy string) ([]domain.Loan, error) {
	if m.ListByLoanIDsFn != nil {
		return m.ListByLoanIDsFn(ctx, loanIDs, createdBy)
	}
	return nil, nil
}

func (m *Repo) ListByBorrowerID(ctx context.Context, borrowerID, createdBy string) ([]domain.Loan, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID, createdBy)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, l *domain.Loan) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, l)
	}
	return nil
}

func (m *Repo) DeleteByBorrowerID(ctx context.Context, borrowerID, createdBy string) error {
	if m.DeleteByBorrowerIDFn != nil {
		return m.DeleteByBorrowerIDFn(ctx, borrowerID, createdBy)
	}
	return nil
}
