package shipping

import (
	"time"

	"github.com/google/uuid"

	"senvo-backend/internal/models"
)

// ShipmentRecord is the API representation of a persisted shipment, with the
// resolved names echoed back instead of raw foreign keys.
type ShipmentRecord struct {
	ID              uuid.UUID       `json:"id"`
	ShipmentNumber  string          `json:"shipment_number"`
	ShipmentDate    time.Time       `json:"shipment_date"`
	Price           float64         `json:"price"`
	Currency        string          `json:"currency"`
	TotalWeight     float64         `json:"total_weight"`
	TotalWeightUnit string          `json:"total_weight_unit"`
	Carrier         string          `json:"carrier"`
	Address         AddressRecord   `json:"address"`
	Packages        []PackageRecord `json:"packages"`
}

type AddressRecord struct {
	PostalCode   string  `json:"postal_code"`
	AddressLine1 string  `json:"address_line_1"`
	AddressLine2 *string `json:"address_line_2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"` // ISO3
}

type PackageRecord struct {
	ID             uuid.UUID `json:"id"`
	Weight         float64   `json:"weight"`
	WeightUnit     string    `json:"weight_unit"`
	Length         float64   `json:"length"`
	Width          float64   `json:"width"`
	Height         float64   `json:"height"`
	DimensionsUnit string    `json:"dimensions_unit"`
}

// ListResponse is the body of a successful GET /shipment/.
type ListResponse struct {
	Page     int              `json:"page"`
	NextPage *int             `json:"next_page"`
	LastPage int              `json:"last_page"`
	Limit    int              `json:"limit"`
	Total    int64            `json:"total"`
	Items    int              `json:"items"`
	Records  []ShipmentRecord `json:"records"`
}

// CreateResponse is the body of a POST /shipment/, full or partial success.
type CreateResponse struct {
	Created int              `json:"created"`
	Message string           `json:"message"`
	Records []ShipmentRecord `json:"records"`
}

// newShipmentRecord flattens a shipment with its preloaded entity graph.
func newShipmentRecord(s models.Shipment) ShipmentRecord {
	var line2 *string
	if s.Address.AddressLine2 != "" {
		l2 := s.Address.AddressLine2
		line2 = &l2
	}

	packages := make([]PackageRecord, 0, len(s.Packages))
	for _, p := range s.Packages {
		packages = append(packages, PackageRecord{
			ID:             p.ID,
			Weight:         p.Weight,
			WeightUnit:     string(p.WeightUnit),
			Length:         p.Length,
			Width:          p.Width,
			Height:         p.Height,
			DimensionsUnit: string(p.DimensionsUnit),
		})
	}

	return ShipmentRecord{
		ID:              s.ID,
		ShipmentNumber:  s.ShipmentNumber,
		ShipmentDate:    s.ShipmentDate,
		Price:           s.Price,
		Currency:        s.Currency,
		TotalWeight:     s.TotalWeight,
		TotalWeightUnit: string(s.TotalWeightUnit),
		Carrier:         s.Carrier.Name,
		Address: AddressRecord{
			PostalCode:   s.Address.PostalCode,
			AddressLine1: s.Address.AddressLine1,
			AddressLine2: line2,
			City:         s.Address.City.Name,
			State:        s.Address.State.Name,
			Country:      s.Address.Country.ISO3,
		},
		Packages: packages,
	}
}

func newShipmentRecords(shipments []models.Shipment) []ShipmentRecord {
	records := make([]ShipmentRecord, 0, len(shipments))
	for _, s := range shipments {
		records = append(records, newShipmentRecord(s))
	}
	return records
}
