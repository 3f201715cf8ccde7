package mysql

import (
	"context"

	borrowerDomain "collateralbook/internal/domain/borrower"

	"gorm.io/gorm"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) GetByBorrowerID(ctx context.Context, borrowerID, createdBy string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).
		Where("borrower_id = ? AND created_by = ?", borrowerID, createdBy).
		First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) List(ctx context.Context, q borrowerDomain.ListQuery) ([]borrowerDomain.Borrower, error) {
	tx := r.db.WithContext(ctx).Where("created_by = ?", q.CreatedBy)
	if q.Search != "" {
		s := "%" + q.Search + "%"
		tx = tx.Where("customer_name LIKE ? OR sector LIKE ?", s, s)
	}
	tx = tx.Order(orderClause(q.OrderBy, q.Desc, "id"))

	var out []borrowerDomain.Borrower
	res := tx.Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) ListByBorrowerIDs(ctx context.Context, borrowerIDs []string, createdBy string) ([]borrowerDomain.Borrower, error) {
	if len(borrowerIDs) == 0 {
		return nil, nil
	}
	var out []borrowerDomain.Borrower
	res := r.db.WithContext(ctx).
		Where("borrower_id IN ? AND created_by = ?", borrowerIDs, createdBy).
		Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) Save(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BorrowerRepository) Delete(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Delete(b).Error
}
