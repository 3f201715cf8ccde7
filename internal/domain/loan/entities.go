package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("loan not found")

type Loan struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	LoanID     string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id_active"`
	CreatedBy  string `gorm:"column:created_by;type:char(32);not null;index:idx_loans_created_by"`
	BorrowerID string `gorm:"column:borrower_id;type:char(32);not null;index:idx_loans_borrower"`
	// Fixed-point: DECIMAL(15,2), same scale as the collateral value column.
	LoanAmount   decimal.Decimal `gorm:"column:loan_amount;type:decimal(15,2);not null"`
	StartDate    time.Time       `gorm:"column:start_date;type:date;not null"`
	MaturityDate time.Time       `gorm:"column:maturity_date;type:date;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Loan) TableName() string { return "loans" }

func OrderColumn(field string) (string, bool) {
	switch field {
	case "loan_amount":
		return "loans.loan_amount", true
	case "date_added":
		return "loans.created_at", true
	case "maturity_date":
		return "loans.maturity_date", true
	}
	return "", false
}
