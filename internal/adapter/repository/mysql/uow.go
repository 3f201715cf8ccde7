package mysql

import (
	"context"

	"collateralbook/internal/domain/collateral"
	"collateralbook/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:       &UserRepository{db: tx},
		Borrowers:   &BorrowerRepository{db: tx},
		Loans:       &LoanRepository{db: tx},
		Collaterals: &CollateralRepository{db: tx},
		ChangeLogs:  &ChangeLogRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinCollateralTx(ctx context.Context, collateralID, createdBy string, fn func(r uow.Repos, c *collateral.Collateral) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the collateral row up-front so the snapshot read is settled
		c, err := r.Collaterals.GetByCollateralIDForUpdate(ctx, collateralID, createdBy)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
