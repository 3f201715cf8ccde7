package mysql

import (
	"context"

	collateralDomain "collateralbook/internal/domain/collateral"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CollateralRepository struct{ db *gorm.DB }

func NewCollateralRepository(db *gorm.DB) *CollateralRepository {
	return &CollateralRepository{db: db}
}

func (r *CollateralRepository) Create(ctx context.Context, c *collateralDomain.Collateral) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CollateralRepository) GetByCollateralID(ctx context.Context, collateralID, createdBy string) (*collateralDomain.Collateral, error) {
	var out collateralDomain.Collateral
	res := r.db.WithContext(ctx).
		Where("collateral_id = ? AND created_by = ?", collateralID, createdBy).
		First(&out)
	return &out, res.Error
}

func (r *CollateralRepository) GetByCollateralIDForUpdate(ctx context.Context, collateralID, createdBy string) (*collateralDomain.Collateral, error) {
	tx := r.db.WithContext(ctx)
	// sqlite (tests) has no SELECT ... FOR UPDATE; its tx already serializes
	if r.db.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out collateralDomain.Collateral
	res := tx.Where("collateral_id = ? AND created_by = ?", collateralID, createdBy).
		First(&out)
	return &out, res.Error
}

func (r *CollateralRepository) List(ctx context.Context, q collateralDomain.ListQuery) ([]collateralDomain.Collateral, error) {
	tx := r.db.WithContext(ctx).Model(&collateralDomain.Collateral{}).
		Where("collaterals.created_by = ?", q.CreatedBy)
	if q.Status != "" {
		tx = tx.Where("collaterals.status = ?", q.Status)
	}
	if q.AssetType != "" {
		tx = tx.Where("collaterals.asset_type = ?", q.AssetType)
	}
	if q.Search != "" {
		s := "%" + q.Search + "%"
		tx = tx.Joins("JOIN loans ON loans.loan_id = collaterals.loan_id AND loans.deleted_at IS NULL").
			Joins("JOIN borrowers ON borrowers.borrower_id = loans.borrower_id AND borrowers.deleted_at IS NULL").
			Where("collaterals.valuer_name LIKE ? OR borrowers.customer_name LIKE ?", s, s)
	}
	tx = tx.Order(orderClause(q.OrderBy, q.Desc, "collaterals.id"))

	var out []collateralDomain.Collateral
	res := tx.Find(&out)
	return out, res.Error
}

func (r *CollateralRepository) Save(ctx context.Context, c *collateralDomain.Collateral) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CollateralRepository) Delete(ctx context.Context, c *collateralDomain.Collateral) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *CollateralRepository) DeleteByLoanIDs(ctx context.Context, loanIDs []string, createdBy string) error {
	if len(loanIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("loan_id IN ? AND created_by = ?", loanIDs, createdBy).
		Delete(&collateralDomain.Collateral{}).Error
}
