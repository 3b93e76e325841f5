package model

import (
	"time"

	"github.com/google/uuid"
)

// ScanDedupMarkerModel is the GORM-specific struct for the
// 'scan_dedup_markers' table. The composite unique index is the invariant:
// at most one credited scan per (user, store, day), enforced by the database
// rather than application checks.
type ScanDedupMarkerModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_scan_dedup_user_store_day"`
	StoreID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_scan_dedup_user_store_day"`
	Day            string    `gorm:"type:char(10);not null;uniqueIndex:uniq_scan_dedup_user_store_day"`
	DuplicateCount int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScanDedupMarkerModel) TableName() string {
	return "scan_dedup_markers"
}
