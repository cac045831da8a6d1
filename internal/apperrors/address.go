package apperrors

import (
	"fmt"
	"net/http"
)

// CountryNotFound reports that no country matched the given name or code.
func CountryNotFound(country string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("Country '%s' does not exist.", country),
		Loc:    []string{"body", "address", "country"},
	}
}

// StateNotFound reports that no state with the given name exists anywhere.
func StateNotFound(state string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("State '%s' does not exist.", state),
		Loc:    []string{"body", "address", "state"},
	}
}

// CityNotFound reports that no city with the given name exists anywhere.
func CityNotFound(city string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("City '%s' does not exist.", city),
		Loc:    []string{"body", "address", "city"},
	}
}

// StateCountryMismatch reports that the state exists but under another country.
func StateCountryMismatch(state, country string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("State '%s' does not belong to country '%s'.", state, country),
		Loc:    []string{"body", "address", "state"},
	}
}

// CityStateMismatch reports that the city exists but under another state.
func CityStateMismatch(city, state string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("City '%s' does not belong to state '%s'.", city, state),
		Loc:    []string{"body", "address", "city"},
	}
}

// CityCountryMismatch reports that the city and state exist together but under
// another country.
func CityCountryMismatch(city, country string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("City '%s' does not belong to country '%s'.", city, country),
		Loc:    []string{"body", "address", "city"},
	}
}

// CountryParamRequired reports a country selector with no populated field.
func CountryParamRequired() *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    "At least one parameter for Country must be provided.",
		Loc:    []string{"body", "address", "country"},
		Param:  []string{"name", "iso3", "iso2", "code"},
	}
}

// CountryParamExclusive reports a country selector with several populated
// fields, where exactly one is expected.
func CountryParamExclusive() *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    "Exactly one parameter for Country must be provided.",
		Loc:    []string{"body", "address", "country"},
		Param:  []string{"name", "iso3", "iso2", "code"},
	}
}

// CountrySelectorFormat reports a selector value failing its field's format.
func CountrySelectorFormat(value, field string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Msg:    fmt.Sprintf("Country selector '%s' is not a valid %s.", value, field),
		Loc:    []string{"body", "address", "country"},
	}
}
