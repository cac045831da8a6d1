package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address: created together with its Shipment and immutable afterwards (no
// update path exists). The city/state/country triple is validated for
// containment by the resolver before a row is ever written.
type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostalCode   string    `gorm:"size:20;not null;index"`
	AddressLine1 string    `gorm:"size:255;not null"`
	AddressLine2 string    `gorm:"size:255"`

	CityID    uuid.UUID `gorm:"type:uuid;index;not null"`
	City      City
	StateID   uuid.UUID `gorm:"type:uuid;index;not null"`
	State     State
	CountryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Country   Country

	Shipments []Shipment `gorm:"foreignKey:AddressID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Address) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
