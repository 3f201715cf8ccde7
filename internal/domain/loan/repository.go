package loan

import "context"

// ListQuery narrows to one owner; Search matches the borrower's customer_name
// (resolved with a join at the store level).
type ListQuery struct {
	CreatedBy string
	Search    string
	OrderBy   string
	Desc      bool
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID, createdBy string) (*Loan, error)
	List(ctx context.Context, q ListQuery) ([]Loan, error)
	// ListByLoanIDs batch-fetches for DTO enrichment (collateral reads embed
	// a loan summary).
	ListByLoanIDs(ctx context.Context, loanIDs []string, createdBy string) ([]Loan, error)
	ListByBorrowerID(ctx context.Context, borrowerID, createdBy string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, l *Loan) error
	// DeleteByBorrowerID removes every loan under a borrower; used by the
	// borrower-delete cascade inside a unit of work.
	DeleteByBorrowerID(ctx context.Context, borrowerID, createdBy string) error
}
