package collateral

import "context"

// ListQuery narrows at the store level: owner always, status/asset type when
// set, Search against valuer_name or the borrower's customer_name. The
// derived ltv_risk filter is NOT part of this query; it is applied in memory
// by the usecase after the store has narrowed the candidate set.
type ListQuery struct {
	CreatedBy string
	Status    string
	AssetType string
	Search    string
	OrderBy   string
	Desc      bool
}

type Repository interface {
	Create(ctx context.Context, c *Collateral) error
	GetByCollateralID(ctx context.Context, collateralID, createdBy string) (*Collateral, error)
	// GetByCollateralIDForUpdate locks the row for the remainder of the
	// surrounding transaction, so the snapshot read in the update flow sees
	// settled values.
	GetByCollateralIDForUpdate(ctx context.Context, collateralID, createdBy string) (*Collateral, error)
	List(ctx context.Context, q ListQuery) ([]Collateral, error)
	Save(ctx context.Context, c *Collateral) error
	Delete(ctx context.Context, c *Collateral) error
	// DeleteByLoanIDs removes every collateral under the given loans; used by
	// the loan/borrower delete cascades inside a unit of work.
	DeleteByLoanIDs(ctx context.Context, loanIDs []string, createdBy string) error
}
