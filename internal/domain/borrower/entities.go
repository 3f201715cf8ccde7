package borrower

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("borrower not found")

type CreditRating string

const (
	RatingAAA CreditRating = "AAA"
	RatingAA  CreditRating = "AA"
	RatingA   CreditRating = "A"
	RatingBBB CreditRating = "BBB"
	RatingBB  CreditRating = "BB"
	RatingB   CreditRating = "B"
	RatingCCC CreditRating = "CCC"
	RatingD   CreditRating = "D"
)

type Sector string

const (
	SectorAgriculture   Sector = "agriculture"
	SectorManufacturing Sector = "manufacturing"
	SectorRealEstate    Sector = "real_estate"
	SectorRetail        Sector = "retail"
	SectorFinance       Sector = "finance"
	SectorOther         Sector = "other"
)

type Borrower struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	BorrowerID   string         `gorm:"column:borrower_id;type:char(32);not null;uniqueIndex:ux_borrowers_borrower_id_active"`
	CreatedBy    string         `gorm:"column:created_by;type:char(32);not null;index:idx_borrowers_created_by"`
	CustomerName string         `gorm:"column:customer_name;size:200;not null"`
	CreditRating CreditRating   `gorm:"column:credit_rating;type:enum('AAA','AA','A','BBB','BB','B','CCC','D')"`
	Sector       Sector         `gorm:"column:sector;type:enum('agriculture','manufacturing','real_estate','retail','finance','other')"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Borrower) TableName() string { return "borrowers" }

// OrderColumn maps an API ordering field to its column. Unknown fields are
// rejected so user input never reaches an ORDER BY clause verbatim.
func OrderColumn(field string) (string, bool) {
	switch field {
	case "customer_name":
		return "customer_name", true
	case "date_added":
		return "created_at", true
	}
	return "", false
}
