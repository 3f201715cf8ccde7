package changelog

import "context"

// ListQuery scopes entries to collaterals owned by CreatedBy (entries carry
// no owner of their own; ownership is derived through the collateral).
// Ascending defaults to false: newest first.
type ListQuery struct {
	CreatedBy    string
	CollateralID string
	Ascending    bool
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, q ListQuery) ([]Entry, error)
}
