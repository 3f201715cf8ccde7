package borrower

import (
	"context"
	"errors"
	"time"

	borrowerDomain "collateralbook/internal/domain/borrower"
	"collateralbook/internal/domain/uow"
	"collateralbook/internal/usecase/ordering"
	"collateralbook/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo borrowerDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r borrowerDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type CreateInput struct {
	CustomerName string
	CreditRating string
	Sector       string
}

// UpdateInput carries only the fields the caller sent; nil means unchanged.
type UpdateInput struct {
	CustomerName *string
	CreditRating *string
	Sector       *string
}

type ListParams struct {
	Search   string
	Ordering string
}

type BorrowerDTO struct {
	ID           string    `json:"id"`
	CreatedBy    string    `json:"created_by"`
	CustomerName string    `json:"customer_name"`
	CreditRating string    `json:"credit_rating"`
	Sector       string    `json:"sector"`
	DateAdded    time.Time `json:"date_added"`
	LastUpdated  time.Time `json:"last_updated"`
}

func toDTO(b *borrowerDomain.Borrower, username string) *BorrowerDTO {
	return &BorrowerDTO{
		ID:           b.BorrowerID,
		CreatedBy:    username,
		CustomerName: b.CustomerName,
		CreditRating: string(b.CreditRating),
		Sector:       string(b.Sector),
		DateAdded:    b.CreatedAt,
		LastUpdated:  b.UpdatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, userID, username string, in CreateInput) (*BorrowerDTO, error) {
	b := &borrowerDomain.Borrower{
		BorrowerID:   id.NewID32(),
		CreatedBy:    userID,
		CustomerName: in.CustomerName,
		CreditRating: borrowerDomain.CreditRating(in.CreditRating),
		Sector:       borrowerDomain.Sector(in.Sector),
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b, username), nil
}

func (u *Usecase) Get(ctx context.Context, userID, username, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowerDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(b, username), nil
}

func (u *Usecase) List(ctx context.Context, userID, username string, p ListParams) ([]BorrowerDTO, error) {
	q := borrowerDomain.ListQuery{CreatedBy: userID, Search: p.Search}
	q.OrderBy, q.Desc = ordering.Parse(p.Ordering, borrowerDomain.OrderColumn)
	rows, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i], username))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, userID, username, borrowerID string, in UpdateInput) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowerDomain.ErrNotFound
		}
		return nil, err
	}
	if in.CustomerName != nil {
		b.CustomerName = *in.CustomerName
	}
	if in.CreditRating != nil {
		b.CreditRating = borrowerDomain.CreditRating(*in.CreditRating)
	}
	if in.Sector != nil {
		b.Sector = borrowerDomain.Sector(*in.Sector)
	}
	if err := u.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b, username), nil
}

// Delete removes the borrower and cascades to its loans and their
// collaterals in one transaction, mirroring FK cascade semantics.
func (u *Usecase) Delete(ctx context.Context, userID, borrowerID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Borrowers.GetByBorrowerID(ctx, borrowerID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return borrowerDomain.ErrNotFound
			}
			return err
		}
		loans, err := r.Loans.ListByBorrowerID(ctx, borrowerID, userID)
		if err != nil {
			return err
		}
		loanIDs := make([]string, 0, len(loans))
		for i := range loans {
			loanIDs = append(loanIDs, loans[i].LoanID)
		}
		if err := r.Collaterals.DeleteByLoanIDs(ctx, loanIDs, userID); err != nil {
			return err
		}
		if err := r.Loans.DeleteByBorrowerID(ctx, borrowerID, userID); err != nil {
			return err
		}
		return r.Borrowers.Delete(ctx, b)
	})
}
