package apperrors

import (
	"fmt"
	"net/http"
)

// CarrierNotFound reports that no carrier with the given name is registered.
func CarrierNotFound(carrier string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("Carrier '%s' does not exist.", carrier),
		Loc:    []string{"body", "carrier"},
	}
}

// ShipmentNumberMismatch reports a tracking number that matches none of the
// carrier's registered patterns.
func ShipmentNumberMismatch(carrier, shipmentNumber string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("Shipment number '%s' does not match any pattern for carrier '%s'.", shipmentNumber, carrier),
		Loc:    []string{"body", "shipment_number"},
	}
}

// ShipmentDateInFuture reports a pickup date later than the current time.
func ShipmentDateInFuture() *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    "The date when the shipment was picked up cannot be in the future.",
		Loc:    []string{"body", "pickup_date"},
	}
}

// InvalidPriceRange reports a price filter whose lower bound exceeds its upper.
func InvalidPriceRange(min, max int) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("The minimum price (%d) cannot be greater than the maximum price (%d).", min, max),
	}
}

// NoShipmentsFound reports that no shipment matched the given filters at all.
func NoShipmentsFound() *Error {
	return &Error{Status: http.StatusNotFound, Msg: "No shipments found."}
}

// NoMoreShipments reports a page past the end of a non-empty result set.
func NoMoreShipments() *Error {
	return &Error{Status: http.StatusNotFound, Msg: "No more shipments."}
}

// NoShipmentsCreated reports a batch in which every submission failed.
func NoShipmentsCreated() *Error {
	return &Error{Status: http.StatusBadRequest, Msg: "No shipments created."}
}
