package changelog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is an append-only audit record of a collateral value/status change.
// Rows are only ever inserted; there is no update or delete path and no soft
// delete column. ChangedBy stays nullable so history survives user removal.
type Entry struct {
	ID           uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	EntryID      string           `gorm:"column:entry_id;type:char(32);not null;uniqueIndex:ux_change_logs_entry_id"`
	CollateralID string           `gorm:"column:collateral_id;type:char(32);not null;index:idx_change_logs_collateral"`
	ChangedBy    *string          `gorm:"column:changed_by;type:char(32)"`
	OldValue     *decimal.Decimal `gorm:"column:old_value;type:decimal(15,2)"`
	NewValue     *decimal.Decimal `gorm:"column:new_value;type:decimal(15,2)"`
	OldStatus    string           `gorm:"column:old_status;size:20"`
	NewStatus    string           `gorm:"column:new_status;size:20"`
	Note         string           `gorm:"column:note;type:text"`
	ChangedAt    time.Time        `gorm:"column:changed_at;autoCreateTime"`
}

func (Entry) TableName() string { return "collateral_change_logs" }
