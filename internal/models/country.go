package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country: immutable reference data, one row per country. Seeded via cmd/seed,
// never written by the request path.
type Country struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:100;not null"`
	Code string    `gorm:"column:code;size:3;not null"` // 3-digit numeric code, kept as string ("004", "840")
	ISO2 string    `gorm:"column:iso2;size:2;not null"` // stored uppercase
	ISO3 string    `gorm:"column:iso3;size:3;not null"` // stored uppercase

	States    []State   `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Cities    []City    `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Addresses []Address `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT"`
}

func (c *Country) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
