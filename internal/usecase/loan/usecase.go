package loan

import (
	"context"
	"errors"
	"time"

	borrowerDomain "collateralbook/internal/domain/borrower"
	loanDomain "collateralbook/internal/domain/loan"
	"collateralbook/internal/domain/uow"
	"collateralbook/internal/usecase/ordering"
	"collateralbook/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	repo      loanDomain.Repository
	borrowers borrowerDomain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(r loanDomain.Repository, borrowers borrowerDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, borrowers: borrowers, uow: tx}
}

type CreateInput struct {
	BorrowerID   string
	LoanAmount   decimal.Decimal
	StartDate    time.Time
	MaturityDate time.Time
}

type UpdateInput struct {
	BorrowerID   *string
	LoanAmount   *decimal.Decimal
	StartDate    *time.Time
	MaturityDate *time.Time
}

type ListParams struct {
	Search   string
	Ordering string
}

// LoanDTO keeps loan_amount as a string so the 2-decimal scale survives
// serialization; dates are date-only.
type LoanDTO struct {
	ID           string    `json:"id"`
	CreatedBy    string    `json:"created_by"`
	Borrower     string    `json:"borrower"`
	BorrowerName string    `json:"borrower_name"`
	LoanAmount   string    `json:"loan_amount"`
	StartDate    string    `json:"start_date"`
	MaturityDate string    `json:"maturity_date"`
	DateAdded    time.Time `json:"date_added"`
	LastUpdated  time.Time `json:"last_updated"`
}

func toDTO(l *loanDomain.Loan, username, borrowerName string) *LoanDTO {
	return &LoanDTO{
		ID:           l.LoanID,
		CreatedBy:    username,
		Borrower:     l.BorrowerID,
		BorrowerName: borrowerName,
		LoanAmount:   l.LoanAmount.StringFixed(2),
		StartDate:    l.StartDate.Format(time.DateOnly),
		MaturityDate: l.MaturityDate.Format(time.DateOnly),
		DateAdded:    l.CreatedAt,
		LastUpdated:  l.UpdatedAt,
	}
}

// borrowerNames maps borrower_id → customer_name for the caller's borrowers.
func (u *Usecase) borrowerNames(ctx context.Context, userID string, borrowerIDs []string) (map[string]string, error) {
	rows, err := u.borrowers.ListByBorrowerIDs(ctx, borrowerIDs, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for i := range rows {
		names[rows[i].BorrowerID] = rows[i].CustomerName
	}
	return names, nil
}

func (u *Usecase) Create(ctx context.Context, userID, username string, in CreateInput) (*LoanDTO, error) {
	// the borrower reference must resolve within the caller's own records
	b, err := u.borrowers.GetByBorrowerID(ctx, in.BorrowerID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowerDomain.ErrNotFound
		}
		return nil, err
	}

	l := &loanDomain.Loan{
		LoanID:       id.NewID32(),
		CreatedBy:    userID,
		BorrowerID:   b.BorrowerID,
		LoanAmount:   in.LoanAmount,
		StartDate:    in.StartDate,
		MaturityDate: in.MaturityDate,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l, username, b.CustomerName), nil
}

func (u *Usecase) Get(ctx context.Context, userID, username, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	names, err := u.borrowerNames(ctx, userID, []string{l.BorrowerID})
	if err != nil {
		return nil, err
	}
	return toDTO(l, username, names[l.BorrowerID]), nil
}

func (u *Usecase) List(ctx context.Context, userID, username string, p ListParams) ([]LoanDTO, error) {
	q := loanDomain.ListQuery{CreatedBy: userID, Search: p.Search}
	q.OrderBy, q.Desc = ordering.Parse(p.Ordering, loanDomain.OrderColumn)
	rows, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	borrowerIDs := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i := range rows {
		if !seen[rows[i].BorrowerID] {
			seen[rows[i].BorrowerID] = true
			borrowerIDs = append(borrowerIDs, rows[i].BorrowerID)
		}
	}
	names, err := u.borrowerNames(ctx, userID, borrowerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i], username, names[rows[i].BorrowerID]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, userID, username, loanID string, in UpdateInput) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	if in.BorrowerID != nil {
		if _, err := u.borrowers.GetByBorrowerID(ctx, *in.BorrowerID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, borrowerDomain.ErrNotFound
			}
			return nil, err
		}
		l.BorrowerID = *in.BorrowerID
	}
	if in.LoanAmount != nil {
		l.LoanAmount = *in.LoanAmount
	}
	if in.StartDate != nil {
		l.StartDate = *in.StartDate
	}
	if in.MaturityDate != nil {
		l.MaturityDate = *in.MaturityDate
	}
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	names, err := u.borrowerNames(ctx, userID, []string{l.BorrowerID})
	if err != nil {
		return nil, err
	}
	return toDTO(l, username, names[l.BorrowerID]), nil
}

// Delete removes the loan and its collaterals in one transaction.
func (u *Usecase) Delete(ctx context.Context, userID, loanID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if err := r.Collaterals.DeleteByLoanIDs(ctx, []string{l.LoanID}, userID); err != nil {
			return err
		}
		return r.Loans.Delete(ctx, l)
	})
}
