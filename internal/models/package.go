package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Package: a single parcel inside a Shipment. Deleted by cascade when the
// shipment goes away.
type Package struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Weight         float64        `gorm:"type:numeric(10,2);not null"`
	WeightUnit     WeightUnit     `gorm:"size:10;not null"`
	Length         float64        `gorm:"type:numeric(10,2);not null"`
	Width          float64        `gorm:"type:numeric(10,2);not null"`
	Height         float64        `gorm:"type:numeric(10,2);not null"`
	DimensionsUnit DimensionsUnit `gorm:"size:10;not null"`

	ShipmentID uuid.UUID `gorm:"type:uuid;index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Package) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
