package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatternSet maps a pattern label ("standard", "freight", ...) to the regex a
// tracking number may match. Stored as jsonb.
type PatternSet map[string]string

func (p PatternSet) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PatternSet) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PatternSet", value)
	}
}

// Carrier: immutable reference data, seeded administratively. A shipment
// number is accepted when it matches any pattern in the set.
type Carrier struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"size:128;uniqueIndex;not null"`
	Patterns PatternSet `gorm:"column:regex_tracking_number;type:jsonb;not null"`

	Shipments []Shipment `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Carrier) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
