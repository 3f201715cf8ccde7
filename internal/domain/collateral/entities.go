package collateral

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("collateral not found")

type AssetType string

const (
	AssetProperty  AssetType = "property"
	AssetVehicle   AssetType = "vehicle"
	AssetEquipment AssetType = "equipment"
	AssetLand      AssetType = "land"
	AssetStocks    AssetType = "stocks"
	AssetOther     AssetType = "other"
)

// AssetTypeLabel returns the human-readable label for an asset type code,
// e.g. "real_estate" style codes become title-cased display names.
func AssetTypeLabel(t AssetType) string {
	switch t {
	case AssetProperty:
		return "Property"
	case AssetVehicle:
		return "Vehicle"
	case AssetEquipment:
		return "Equipment"
	case AssetLand:
		return "Land"
	case AssetStocks:
		return "Stocks"
	case AssetOther:
		return "Other"
	}
	return string(t)
}

type Status string

const (
	StatusActive     Status = "active"
	StatusReleased   Status = "released"
	StatusForeclosed Status = "foreclosed"
)

type Collateral struct {
	ID           uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	CollateralID string          `gorm:"column:collateral_id;type:char(32);not null;uniqueIndex:ux_collaterals_collateral_id_active"`
	CreatedBy    string          `gorm:"column:created_by;type:char(32);not null;index:idx_collaterals_created_by"`
	LoanID       string          `gorm:"column:loan_id;type:char(32);not null;index:idx_collaterals_loan"`
	AssetType    AssetType       `gorm:"column:asset_type;type:enum('property','vehicle','equipment','land','stocks','other')"`
	ValuerName   string          `gorm:"column:valuer_name;size:200;not null"`
	MarketValue  decimal.Decimal `gorm:"column:market_value;type:decimal(15,2);not null"`
	Status       Status          `gorm:"column:status;type:enum('active','released','foreclosed');default:'active'"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Collateral) TableName() string { return "collaterals" }

func OrderColumn(field string) (string, bool) {
	switch field {
	case "market_value":
		return "collaterals.market_value", true
	case "date_added":
		return "collaterals.created_at", true
	}
	return "", false
}
