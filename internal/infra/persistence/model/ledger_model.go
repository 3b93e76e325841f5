package model

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntryModel is the GORM-specific struct for the 'ledger_entries'
// table. Rows are append-only: no update, no delete, no soft-delete column.
type LedgerEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_ledger_user_store"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index:idx_ledger_user_store"`
	Delta       int64     `gorm:"not null"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	RewardTitle string    `gorm:"type:varchar(255);not null;default:''"`
	Note        string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// PointBalanceModel is the GORM-specific struct for the 'point_balances'
// table: the denormalized per-pair counter that doubles as the row lock for
// ledger appends. The ledger fold is the source of truth.
type PointBalanceModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	StoreID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Balance   int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointBalanceModel) TableName() string {
	return "point_balances"
}
