// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// The engine reads the store directory; row management is owned by the
// partner-facing platform.
type StoreModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Latitude          float64   `gorm:"type:double precision;not null"`
	Longitude         float64   `gorm:"type:double precision;not null"`
	AcceptanceRadiusM float64   `gorm:"type:double precision;not null;default:0"`
	PendingRadiusM    float64   `gorm:"type:double precision;not null;default:0"`
	PointValue        int64     `gorm:"not null;default:0"`
	IsActive          bool      `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
