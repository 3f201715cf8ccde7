package uow

import (
	"context"

	"collateralbook/internal/domain/borrower"
	"collateralbook/internal/domain/changelog"
	"collateralbook/internal/domain/collateral"
	"collateralbook/internal/domain/loan"
	"collateralbook/internal/domain/user"
)

// Repos is the full repository set bound to one transaction.
type Repos struct {
	Users       user.Repository
	Borrowers   borrower.Repository
	Loans       loan.Repository
	Collaterals collateral.Repository
	ChangeLogs  changelog.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the collateral row first, then pass it in. The
	// update+log flow depends on this read happening before any mutation.
	WithinCollateralTx(ctx context.Context, collateralID, createdBy string, fn func(r Repos, c *collateral.Collateral) error) error
}
