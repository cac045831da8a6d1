package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City: belongs to one State and, denormalized, one Country. The schema does
// not enforce that city.country matches city.state.country; the address
// resolver checks that containment on every lookup.
type City struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;index"`
	StateID   uuid.UUID `gorm:"type:uuid;index;not null"`
	State     State
	CountryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Country   Country

	Addresses []Address `gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
}

func (c *City) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
