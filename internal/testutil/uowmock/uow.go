package uowmock

import (
	"context"
	"errors"

	"collateralbook/internal/domain/collateral"
	"collateralbook/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn           func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinCollateralTxFn func(ctx context.Context, collateralID, createdBy string, fn func(r uow.Repos, c *collateral.Collateral) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinCollateralTx(ctx context.Context, collateralID, createdBy string, fn func(r uow.Repos, c *collateral.Collateral) error) error {
	if m.WithinCollateralTxFn != nil {
		return m.WithinCollateralTxFn(ctx, collateralID, createdBy, fn)
	}
	return errUnimplemented
}
