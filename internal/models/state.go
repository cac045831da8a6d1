package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// State: belongs to exactly one Country. The name is indexed but deliberately
// not unique; several countries share state names and the resolver
// disambiguates by country_id.
type State struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;index"`
	CountryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Country   Country

	Cities    []City    `gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE"`
	Addresses []Address `gorm:"foreignKey:StateID;constraint:OnDelete:RESTRICT"`
}

func (s *State) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
