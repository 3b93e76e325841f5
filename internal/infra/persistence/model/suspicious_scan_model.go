package model

import (
	"time"

	"github.com/google/uuid"
)

// SuspiciousScanModel is the GORM-specific struct for the 'suspicious_scans'
// table. Both coordinate pairs are retained for later forensics; blocked rows
// feed the deny-list lookup on future scans.
type SuspiciousScanModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID           uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceFingerprint string    `gorm:"type:varchar(255);not null;index"`
	ScanLatitude      float64   `gorm:"type:double precision;not null"`
	ScanLongitude     float64   `gorm:"type:double precision;not null"`
	StoreLatitude     float64   `gorm:"type:double precision;not null"`
	StoreLongitude    float64   `gorm:"type:double precision;not null"`
	DistanceM         float64   `gorm:"type:double precision;not null"`
	Reason            string    `gorm:"type:text;not null"`
	Status            string    `gorm:"type:varchar(20);not null;index"`
	OccurredAt        time.Time `gorm:"not null"`
	ReviewedAt        *time.Time
	CreatedAt         time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SuspiciousScanModel) TableName() string {
	return "suspicious_scans"
}
