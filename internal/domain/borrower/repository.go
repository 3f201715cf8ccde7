package borrower

import "context"

// ListQuery narrows a listing to one owner; Search matches customer_name or
// sector, OrderBy is a column resolved via OrderColumn.
type ListQuery struct {
	CreatedBy string
	Search    string
	OrderBy   string
	Desc      bool
}

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	// GetByBorrowerID is owner-scoped: an id owned by someone else behaves
	// exactly like a missing one.
	GetByBorrowerID(ctx context.Context, borrowerID, createdBy string) (*Borrower, error)
	List(ctx context.Context, q ListQuery) ([]Borrower, error)
	// ListByBorrowerIDs batch-fetches for DTO enrichment (loan/collateral
	// reads embed the borrower's name).
	ListByBorrowerIDs(ctx context.Context, borrowerIDs []string, createdBy string) ([]Borrower, error)
	Save(ctx context.Context, b *Borrower) error
	Delete(ctx context.Context, b *Borrower) error
}
