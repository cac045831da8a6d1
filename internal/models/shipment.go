package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shipment: one accepted shipment submission. Written once inside the
// assembler's transaction together with its Address and Packages, never
// updated afterwards.
type Shipment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentNumber  string     `gorm:"size:40;not null"` // the carrier tracking number claimed by the client
	ShipmentDate    time.Time  `gorm:"not null"`         // pickup date, never in the future
	Price           float64    `gorm:"type:numeric(10,2);not null"`
	Currency        string     `gorm:"size:3;not null"` // ISO-4217 code, validated against the static table
	TotalWeight     float64    `gorm:"type:numeric(15,2);not null"`
	TotalWeightUnit WeightUnit `gorm:"size:10;not null"`

	CarrierID uuid.UUID `gorm:"type:uuid;index;not null"`
	Carrier   Carrier
	AddressID uuid.UUID `gorm:"type:uuid;index;not null"`
	Address   Address

	Packages []Package `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (s *Shipment) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
