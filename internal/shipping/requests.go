package shipping

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"senvo-backend/internal/geo"
	"senvo-backend/internal/models"
)

// MaxBatchSize caps how many shipments one POST may carry.
const MaxBatchSize = 100

var (
	postalCodePattern  = regexp.MustCompile(`^[A-Za-z0-9\- ]{3,10}$`)
	addressLinePattern = regexp.MustCompile(`^[A-Za-z0-9\s\.,'\-#/]{5,150}$`)
)

// Datetime accepts the same ISO 8601 forms in request bodies that the listing
// accepts in query parameters: RFC 3339, a zone-less timestamp, or a bare
// date. Zone-less values are read as UTC.
type Datetime struct {
	time.Time
}

func (d *Datetime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t, err := parseDatetime(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ShipmentRequest is one submission in a POST /shipment/ batch.
type ShipmentRequest struct {
	ShipmentNumber  string           `json:"shipment_number"`
	ShipmentDate    Datetime         `json:"shipment_date"`
	Price           float64          `json:"price"`
	Currency        string           `json:"currency"`
	TotalWeight     float64          `json:"total_weight"`
	TotalWeightUnit string           `json:"total_weight_unit"`
	Carrier         string           `json:"carrier"`
	Address         AddressRequest   `json:"address"`
	Packages        []PackageRequest `json:"packages"`
}

type AddressRequest struct {
	PostalCode   string              `json:"postal_code"`
	AddressLine1 string              `json:"address_line_1"`
	AddressLine2 string              `json:"address_line_2"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	Country      geo.CountrySelector `json:"country"`
}

type PackageRequest struct {
	Weight         float64 `json:"weight"`
	WeightUnit     string  `json:"weight_unit"`
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	DimensionsUnit string  `json:"dimensions_unit"`
}

// ValidateBatch checks the batch envelope and every submission's fields.
// Format and range violations reject the whole request before any database
// access; reference resolution happens later, per submission.
func ValidateBatch(batch []ShipmentRequest) error {
	if len(batch) == 0 || len(batch) > MaxBatchSize {
		return fiber.NewError(fiber.StatusBadRequest, "The batch must contain between 1 and 100 shipments.")
	}
	for i := range batch {
		if err := batch[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks field formats and bounds, filling unit defaults in place.
func (r *ShipmentRequest) Validate() error {
	if n := utf8.RuneCountInString(r.ShipmentNumber); n < 3 || n > 40 {
		return fiber.NewError(fiber.StatusBadRequest, "The shipment number should be between 3 and 40 symbols.")
	}
	if r.ShipmentDate.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "The shipment date is required, in ISO 8601 format.")
	}
	if r.Price <= 0.1 || r.Price > 1_000_000 {
		return fiber.NewError(fiber.StatusBadRequest, "The price of the shipment should be between 0.1 and 1,000,000.")
	}
	if !models.ValidCurrency(r.Currency) {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Currency '%s' is not a supported ISO 4217 code.", r.Currency))
	}
	r.Currency = strings.ToUpper(r.Currency)
	if r.TotalWeight <= 0.1 || r.TotalWeight > 1_000_000 {
		return fiber.NewError(fiber.StatusBadRequest, "The total weight of the shipment should be between 0.1 and 1,000,000.")
	}
	if r.TotalWeightUnit == "" {
		r.TotalWeightUnit = string(models.WeightUnitKilogram)
	}
	if !models.WeightUnit(r.TotalWeightUnit).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("The weight unit '%s' is not one of 'GRAM', 'KG' or 'LB'.", r.TotalWeightUnit))
	}
	if n := utf8.RuneCountInString(r.Carrier); n < 3 || n > 128 {
		return fiber.NewError(fiber.StatusBadRequest, "The carrier name should be between 3 and 128 symbols.")
	}
	if err := r.Address.Validate(); err != nil {
		return err
	}
	if len(r.Packages) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "The shipment must contain at least one package.")
	}
	for i := range r.Packages {
		if err := r.Packages[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *AddressRequest) Validate() error {
	if !postalCodePattern.MatchString(r.PostalCode) {
		return fiber.NewError(fiber.StatusBadRequest, "The postal code must contain between 3 and 10 symbols.")
	}
	if !addressLinePattern.MatchString(r.AddressLine1) {
		return fiber.NewError(fiber.StatusBadRequest, "The address line 1 must contain between 5 and 150 symbols.")
	}
	if r.AddressLine2 != "" && !addressLinePattern.MatchString(r.AddressLine2) {
		return fiber.NewError(fiber.StatusBadRequest, "The address line 2 must contain between 5 and 150 symbols.")
	}
	if n := utf8.RuneCountInString(r.City); n < 1 || n > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "The city's name must contain between 1 and 100 symbols.")
	}
	if n := utf8.RuneCountInString(r.State); n < 1 || n > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "The state's name must contain between 1 and 100 symbols.")
	}
	return nil
}

func (r *PackageRequest) Validate() error {
	if r.Weight <= 0.1 || r.Weight > 1_000_000 {
		return fiber.NewError(fiber.StatusBadRequest, "The weight of the package should be between 0.1 and 1,000,000.")
	}
	if r.WeightUnit == "" {
		r.WeightUnit = string(models.WeightUnitGram)
	}
	if !models.WeightUnit(r.WeightUnit).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("The weight unit '%s' is not one of 'GRAM', 'KG' or 'LB'.", r.WeightUnit))
	}
	if r.Length <= 0.1 || r.Length > 10_000 {
		return fiber.NewError(fiber.StatusBadRequest, "The length of the package should be between 0.1 and 10,000.")
	}
	if r.Width <= 0.1 || r.Width > 10_000 {
		return fiber.NewError(fiber.StatusBadRequest, "The width of the package should be between 0.1 and 10,000.")
	}
	if r.Height <= 0.1 || r.Height > 10_000 {
		return fiber.NewError(fiber.StatusBadRequest, "The height of the package should be between 0.1 and 10,000.")
	}
	if r.DimensionsUnit == "" {
		r.DimensionsUnit = string(models.DimensionsUnitCentimeter)
	}
	if !models.DimensionsUnit(r.DimensionsUnit).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("The dimensions unit '%s' is not one of 'MM', 'CM' or 'IN'.", r.DimensionsUnit))
	}
	return nil
}

// toInput maps the request to the resolver's input form.
func (r AddressRequest) toInput() geo.AddressInput {
	return geo.AddressInput{
		PostalCode:   r.PostalCode,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
	}
}
