package model

import (
	"time"

	"github.com/google/uuid"
)

// PendingScanModel is the GORM-specific struct for the 'pending_scans'
// table. Core scan facts are written once; only status and reviewed_at are
// ever updated.
type PendingScanModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID           uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceFingerprint string    `gorm:"type:varchar(255);not null"`
	Latitude          float64   `gorm:"type:double precision;not null"`
	Longitude         float64   `gorm:"type:double precision;not null"`
	DistanceM         float64   `gorm:"type:double precision;not null"`
	Status            string    `gorm:"type:varchar(20);not null;index"`
	OccurredAt        time.Time `gorm:"not null"`
	ReviewedAt        *time.Time
	CreatedAt         time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PendingScanModel) TableName() string {
	return "pending_scans"
}
