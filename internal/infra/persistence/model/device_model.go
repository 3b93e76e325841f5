package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreDeviceModel is the GORM-specific struct for the 'store_devices' table.
// It represents a point-of-sale device registered to a store.
type StoreDeviceModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Fingerprint string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	LastUserID  *uuid.UUID `gorm:"type:uuid"`
	LastUsedAt  *time.Time
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StoreDeviceModel) TableName() string {
	return "store_devices"
}
