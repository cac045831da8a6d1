package geo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"senvo-backend/internal/apperrors"
)

// CountryField names the country column a selector resolves against.
type CountryField string

const (
	CountryFieldName CountryField = "name"
	CountryFieldCode CountryField = "code"
	CountryFieldISO2 CountryField = "iso2"
	CountryFieldISO3 CountryField = "iso3"
)

var (
	codePattern = regexp.MustCompile(`^[0-9]{3}$`)
	iso2Pattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
	iso3Pattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// CountrySelector identifies a country by exactly one of its fields.
type CountrySelector struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
	ISO2 string `json:"iso2,omitempty"`
	ISO3 string `json:"iso3,omitempty"`
}

// resolveField picks the populated selector field, checks its format and
// normalizes ISO codes to uppercase. Zero or several populated fields are
// rejected, as is a value failing its field's format.
func (s CountrySelector) resolveField() (CountryField, string, *apperrors.Error) {
	type candidate struct {
		field CountryField
		value string
	}
	var picked []candidate
	if s.Name != "" {
		picked = append(picked, candidate{CountryFieldName, s.Name})
	}
	if s.Code != "" {
		picked = append(picked, candidate{CountryFieldCode, s.Code})
	}
	if s.ISO2 != "" {
		picked = append(picked, candidate{CountryFieldISO2, s.ISO2})
	}
	if s.ISO3 != "" {
		picked = append(picked, candidate{CountryFieldISO3, s.ISO3})
	}

	if len(picked) == 0 {
		return "", "", apperrors.CountryParamRequired()
	}
	if len(picked) > 1 {
		return "", "", apperrors.CountryParamExclusive()
	}

	c := picked[0]
	switch c.field {
	case CountryFieldName:
		if n := utf8.RuneCountInString(c.value); n < 2 || n > 100 {
			return "", "", apperrors.CountrySelectorFormat(c.value, "name")
		}
	case CountryFieldCode:
		if !codePattern.MatchString(c.value) {
			return "", "", apperrors.CountrySelectorFormat(c.value, "code")
		}
	case CountryFieldISO2:
		if !iso2Pattern.MatchString(c.value) {
			return "", "", apperrors.CountrySelectorFormat(c.value, "iso2")
		}
		c.value = strings.ToUpper(c.value)
	case CountryFieldISO3:
		if !iso3Pattern.MatchString(c.value) {
			return "", "", apperrors.CountrySelectorFormat(c.value, "iso3")
		}
		c.value = strings.ToUpper(c.value)
	}

	return c.field, c.value, nil
}
