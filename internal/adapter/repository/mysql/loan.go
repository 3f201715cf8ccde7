package mysql

import (
	"context"

	loanDomain "collateralbook/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID, createdBy string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND created_by = ?", loanID, createdBy).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, q loanDomain.ListQuery) ([]loanDomain.Loan, error) {
	tx := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loans.created_by = ?", q.CreatedBy)
	if q.Search != "" {
		// borrower-name search happens at the store level via a join
		tx = tx.Joins("JOIN borrowers ON borrowers.borrower_id = loans.borrower_id AND borrowers.deleted_at IS NULL").
			Where("borrowers.customer_name LIKE ?", "%"+q.Search+"%")
	}
	tx = tx.Order(orderClause(q.OrderBy, q.Desc, "loans.id"))

	var out []loanDomain.Loan
	res := tx.Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByLoanIDs(ctx context.Context, loanIDs []string, createdBy string) ([]loanDomain.Loan, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("loan_id IN ? AND created_by = ?", loanIDs, createdBy).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByBorrowerID(ctx context.Context, borrowerID, createdBy string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("borrower_id = ? AND created_by = ?", borrowerID, createdBy).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Delete(l).Error
}

func (r *LoanRepository) DeleteByBorrowerID(ctx context.Context, borrowerID, createdBy string) error {
	return r.db.WithContext(ctx).
		Where("borrower_id = ? AND created_by = ?", borrowerID, createdBy).
		Delete(&loanDomain.Loan{}).Error
}
