package mysql

import (
	"context"

	changelogDomain "collateralbook/internal/domain/changelog"

	"gorm.io/gorm"
)

type ChangeLogRepository struct{ db *gorm.DB }

func NewChangeLogRepository(db *gorm.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

func (r *ChangeLogRepository) Create(ctx context.Context, e *changelogDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// List derives ownership transitively: entries have no created_by of their
// own, so the visible set is whatever hangs off the caller's collaterals.
func (r *ChangeLogRepository) List(ctx context.Context, q changelogDomain.ListQuery) ([]changelogDomain.Entry, error) {
	tx := r.db.WithContext(ctx).Model(&changelogDomain.Entry{}).
		Joins("JOIN collaterals ON collaterals.collateral_id = collateral_change_logs.collateral_id AND collaterals.deleted_at IS NULL").
		Where("collaterals.created_by = ?", q.CreatedBy)
	if q.CollateralID != "" {
		tx = tx.Where("collateral_change_logs.collateral_id = ?", q.CollateralID)
	}
	if q.Ascending {
		tx = tx.Order("collateral_change_logs.changed_at ASC, collateral_change_logs.id ASC")
	} else {
		tx = tx.Order("collateral_change_logs.changed_at DESC, collateral_change_logs.id DESC")
	}

	var out []changelogDomain.Entry
	res := tx.Find(&out)
	return out, res.Error
}
