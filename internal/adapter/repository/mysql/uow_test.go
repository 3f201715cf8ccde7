package mysql

import (
	"context"
	"errors"
	"testing"

	changelogDomain "collateralbook/internal/domain/changelog"
	collateralDomain "collateralbook/internal/domain/collateral"
	"collateralbook/internal/domain/uow"
	"collateralbook/pkg/id"

	"gorm.io/gorm"
)

func TestUoW_WithinCollateralTx_CommitsBothWrites(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	l := seedLoan(t, db, ownerA, id.NewID32())
	c := seedCollateral(t, db, ownerA, l.LoanID, collateralDomain.AssetProperty, collateralDomain.StatusActive, "ACME Valuations")

	err := u.WithinCollateralTx(ctx, c.CollateralID, ownerA, func(r uow.Repos, locked *collateralDomain.Collateral) error {
		oldValue := locked.MarketValue
		locked.MarketValue = mustDec(t, "60000.00")
		if err := r.Collaterals.Save(ctx, locked); err != nil {
			return err
		}
		nv := locked.MarketValue
		return r.ChangeLogs.Create(ctx, &changelogDomain.Entry{
			EntryID:      id.NewID32(),
			CollateralID: locked.CollateralID,
			OldValue:     &oldValue,
			NewValue:     &nv,
			OldStatus:    string(locked.Status),
			NewStatus:    string(locked.Status),
			Note:         "Updated by alice",
		})
	})
	if err != nil {
		t.Fatalf("WithinCollateralTx: %v", err)
	}

	got, err := NewCollateralRepository(db).GetByCollateralID(ctx, c.CollateralID, ownerA)
	if err != nil {
		t.Fatalf("reload collateral: %v", err)
	}
	if !got.MarketValue.Equal(mustDec(t, "60000.00")) {
		t.Fatalf("market_value = %s after commit", got.MarketValue)
	}
	entries, err := NewChangeLogRepository(db).List(ctx, changelogDomain.ListQuery{CreatedBy: ownerA})
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
}

func TestUoW_WithinCollateralTx_RollsBackOnLogFailure(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	l := seedLoan(t, db, ownerA, id.NewID32())
	c := seedCollateral(t, db, ownerA, l.LoanID, collateralDomain.AssetProperty, collateralDomain.StatusActive, "ACME Valuations")

	// sabotage the audit table so the second write inside the tx fails
	if err := db.Migrator().DropTable("collateral_change_logs"); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	err := u.WithinCollateralTx(ctx, c.CollateralID, ownerA, func(r uow.Repos, locked *collateralDomain.Collateral) error {
		locked.MarketValue = mustDec(t, "1.00")
		if err := r.Collaterals.Save(ctx, locked); err != nil {
			return err
		}
		nv := locked.MarketValue
		return r.ChangeLogs.Create(ctx, &changelogDomain.Entry{
			EntryID:      id.NewID32(),
			CollateralID: locked.CollateralID,
			NewValue:     &nv,
			OldStatus:    string(locked.Status),
			NewStatus:    string(locked.Status),
		})
	})
	if err == nil {
		t.Fatal("want error when the audit insert fails")
	}

	got, gerr := NewCollateralRepository(db).GetByCollateralID(ctx, c.CollateralID, ownerA)
	if gerr != nil {
		t.Fatalf("reload collateral: %v", gerr)
	}
	if !got.MarketValue.Equal(mustDec(t, "75000.00")) {
		t.Fatalf("market_value = %s, value update must roll back with the log", got.MarketValue)
	}
}

func TestUoW_WithinCollateralTx_NotFoundForWrongOwner(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	l := seedLoan(t, db, ownerA, id.NewID32())
	c := seedCollateral(t, db, ownerA, l.LoanID, collateralDomain.AssetProperty, collateralDomain.StatusActive, "ACME Valuations")

	err := u.WithinCollateralTx(ctx, c.CollateralID, ownerB, func(r uow.Repos, locked *collateralDomain.Collateral) error {
		t.Fatal("callback must not run for another owner's collateral")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want record not found", err)
	}
}

func TestUoW_WithinTx_CommitsAllRepos(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	b := makeBorrower(ownerA, "Green Acres")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Borrowers.Create(ctx, b)
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if _, err := NewBorrowerRepository(db).GetByBorrowerID(ctx, b.BorrowerID, ownerA); err != nil {
		t.Fatalf("row not committed: %v", err)
	}
}

func TestUoW_WithinTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	b := makeBorrower(ownerA, "Green Acres")
	sentinel := errors.New("abort")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Borrowers.Create(ctx, b); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if _, err := NewBorrowerRepository(db).GetByBorrowerID(ctx, b.BorrowerID, ownerA); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row survived rollback, err = %v", err)
	}
}
