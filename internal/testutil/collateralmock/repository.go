package collateralmock

import (
	"context"
	"errors"

	domain "collateralbook/internal/domain/collateral"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("collateralmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, c *domain.Collateral) error
	GetByCollateralIDFn          func(ctx context.Context, collateralID, createdBy string) (*domain.Collateral, error)
	GetByCollateralIDForUpdateFn func(ctx context.Context, collateralID, createdBy string) (*domain.Collateral, error)
	ListFn                       func(ctx context.Context, q domain.ListQuery) ([]domain.Collateral, error)
	SaveFn                       func(ctx context.Context, c *domain.Collateral) error
	DeleteFn                     func(ctx context.Context, c *domain.Collateral) error
	DeleteByLoanIDsFn            func(ctx context.Context, loanIDs []string, createdBy string) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Collateral) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCollateralID(ctx context.Context, collateralID, createdBy string) (*domain.Collateral, error) {
	if m.GetByCollateralIDFn != nil {
		return m.GetByCollateralIDFn(ctx, collateralID, createdBy)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByCollateralIDForUpdate(ctx context.Context, collateralID, createdBy string) (*domain.Collateral, error) {
	if m.GetByCollateralIDForUpdateFn != nil {
		return m.GetByCollateralIDForUpdateFn(ctx, collateralID, createdBy)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, q domain.ListQuery) ([]domain.Collateral, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Collateral) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, c *domain.Collateral) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteByLoanIDs(ctx context.Context, loanIDs []string, createdBy string) error {
	if m.DeleteByLoanIDsFn != nil {
		return m.DeleteByLoanIDsFn(ctx, loanIDs, createdBy)
	}
	return nil
}
