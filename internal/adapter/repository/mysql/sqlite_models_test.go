package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM columns) ---

type userSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	UserID       string    `gorm:"size:32;column:user_id"`
	Username     string    `gorm:"size:150;column:username"`
	Email        string    `gorm:"size:254;column:email"`
	PasswordHash string    `gorm:"size:255;column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type borrowerSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	BorrowerID   string         `gorm:"size:32;column:borrower_id"`
	CreatedBy    string         `gorm:"size:32;column:created_by"`
	CustomerName string         `gorm:"size:200;column:customer_name"`
	CreditRating string         `gorm:"type:text;column:credit_rating"` // ← no enum
	Sector       string         `gorm:"type:text;column:sector"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (borrowerSQLite) TableName() string { return "borrowers" }

type loanSQLite struct {
	ID           uint64          `gorm:"primaryKey;column:id"`
	LoanID       string          `gorm:"size:32;column:loan_id"`
	CreatedBy    string          `gorm:"size:32;column:created_by"`
	BorrowerID   string          `gorm:"size:32;column:borrower_id"`
	LoanAmount   decimal.Decimal `gorm:"type:decimal(15,2);column:loan_amount"`
	StartDate    time.Time       `gorm:"column:start_date"`
	MaturityDate time.Time       `gorm:"column:maturity_date"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type collateralSQLite struct {
	ID           uint64          `gorm:"primaryKey;column:id"`
	CollateralID string          `gorm:"size:32;column:collateral_id"`
	CreatedBy    string          `gorm:"size:32;column:created_by"`
	LoanID       string          `gorm:"size:32;column:loan_id"`
	AssetType    string          `gorm:"type:text;column:asset_type"` // ← no enum
	ValuerName   string          `gorm:"size:200;column:valuer_name"`
	MarketValue  decimal.Decimal `gorm:"type:decimal(15,2);column:market_value"`
	Status       string          `gorm:"type:text;column:status"` // ← no enum
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (collateralSQLite) TableName() string { return "collaterals" }

type changeLogSQLite struct {
	ID           uint64           `gorm:"primaryKey;column:id"`
	EntryID      string           `gorm:"size:32;column:entry_id"`
	CollateralID string           `gorm:"size:32;column:collateral_id"`
	ChangedBy    *string          `gorm:"size:32;column:changed_by"`
	OldValue     *decimal.Decimal `gorm:"type:decimal(15,2);column:old_value"`
	NewValue     *decimal.Decimal `gorm:"type:decimal(15,2);column:new_value"`
	OldStatus    string           `gorm:"size:20;column:old_status"`
	NewStatus    string           `gorm:"size:20;column:new_status"`
	Note         string           `gorm:"type:text;column:note"`
	ChangedAt    time.Time        `gorm:"column:changed_at"`
}

func (changeLogSQLite) TableName() string { return "collateral_change_logs" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userSQLite{}, &borrowerSQLite{}, &loanSQLite{}, &collateralSQLite{}, &changeLogSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}
