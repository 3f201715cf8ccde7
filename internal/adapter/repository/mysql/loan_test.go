package mysql

import (
	"context"
	"errors"
	"testing"

	loanDomain "collateralbook/internal/domain/loan"
	userDomain "collateralbook/internal/domain/user"
	"collateralbook/pkg/id"

	"gorm.io/gorm"
)

func TestLoan_SearchByBorrowerName(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	b1 := makeBorrower(ownerA, "Green Acres")
	b2 := makeBorrower(ownerA, "Steelworks Ltd")
	if err := NewBorrowerRepository(db).Create(ctx, b1); err != nil {
		t.Fatalf("seed borrower: %v", err)
	}
	if err := NewBorrowerRepository(db).Create(ctx, b2); err != nil {
		t.Fatalf("seed borrower: %v", err)
	}
	seedLoan(t, db, ownerA, b1.BorrowerID)
	seedLoan(t, db, ownerA, b2.BorrowerID)

	rows, err := repo.List(ctx, loanDomain.ListQuery{CreatedBy: ownerA, Search: "steel"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 || rows[0].BorrowerID != b2.BorrowerID {
		t.Fatalf("search rows: %+v", rows)
	}
}

func TestLoan_ListByBorrowerIDScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	bid := id.NewID32()
	seedLoan(t, db, ownerA, bid)
	seedLoan(t, db, ownerA, bid)

	rows, err := repo.ListByBorrowerID(ctx, bid, ownerA)
	if err != nil {
		t.Fatalf("ListByBorrowerID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	rows, err = repo.ListByBorrowerID(ctx, bid, ownerB)
	if err != nil {
		t.Fatalf("ListByBorrowerID: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("other owner rows = %d, want 0", len(rows))
	}
}

func TestLoan_DeleteByBorrowerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	bid := id.NewID32()
	l := seedLoan(t, db, ownerA, bid)
	if err := repo.DeleteByBorrowerID(ctx, bid, ownerA); err != nil {
		t.Fatalf("DeleteByBorrowerID: %v", err)
	}
	if _, err := repo.GetByLoanID(ctx, l.LoanID, ownerA); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("loan still visible, err = %v", err)
	}
}

func TestUser_GetByUsername(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &userDomain.User{UserID: id.NewID32(), Username: "alice", Email: "a@example.com", PasswordHash: "x"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.UserID != u.UserID {
		t.Fatalf("user_id = %q", got.UserID)
	}
	if _, err := repo.GetByUsername(ctx, "ghost"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want record not found", err)
	}
}
