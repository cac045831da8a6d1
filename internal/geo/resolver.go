// Package geo resolves free-text address input against the country/state/city
// reference hierarchy. Resolution is read-only and ordered: the country must
// resolve before the state is attempted, the state before the city, so the
// first broken link is the one reported.
package geo

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"senvo-backend/internal/apperrors"
)

// AddressInput is the free-text address of a shipment submission.
type AddressInput struct {
	PostalCode   string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      CountrySelector
}

// Resolution carries the canonical ids of a resolved address, plus the display
// names echoed back in responses.
type Resolution struct {
	CityID    uuid.UUID
	StateID   uuid.UUID
	CountryID uuid.UUID

	CityName    string
	StateName   string
	CountryName string
	CountryISO3 string
}

type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve maps the input's country selector, state name and city name to their
// reference rows. A state or city that exists under a different parent is
// reported as a mismatch rather than as absent.
func (r *Resolver) Resolve(ctx context.Context, in AddressInput) (*Resolution, error) {
	field, value, appErr := in.Country.resolveField()
	if appErr != nil {
		return nil, appErr
	}

	country, err := r.store.FindCountry(ctx, field, value)
	if err != nil {
		return nil, errors.Wrap(err, "looking up country")
	}
	if country == nil {
		return nil, apperrors.CountryNotFound(value)
	}

	state, err := r.store.FindState(ctx, in.State, country.ID)
	if err != nil {
		return nil, errors.Wrap(err, "looking up state")
	}
	if state == nil {
		elsewhere, err := r.store.StateExists(ctx, in.State)
		if err != nil {
			return nil, errors.Wrap(err, "looking up state")
		}
		if elsewhere {
			return nil, apperrors.StateCountryMismatch(in.State, country.Name)
		}
		return nil, apperrors.StateNotFound(in.State)
	}

	city, err := r.store.FindCity(ctx, in.City, state.ID, country.ID)
	if err != nil {
		return nil, errors.Wrap(err, "looking up city")
	}
	if city == nil {
		inState, err := r.store.CityExistsInState(ctx, in.City, state.ID)
		if err != nil {
			return nil, errors.Wrap(err, "looking up city")
		}
		if inState {
			return nil, apperrors.CityCountryMismatch(in.City, country.Name)
		}
		anywhere, err := r.store.CityExists(ctx, in.City)
		if err != nil {
			return nil, errors.Wrap(err, "looking up city")
		}
		if anywhere {
			return nil, apperrors.CityStateMismatch(in.City, state.Name)
		}
		return nil, apperrors.CityNotFound(in.City)
	}

	return &Resolution{
		CityID:      city.ID,
		StateID:     state.ID,
		CountryID:   country.ID,
		CityName:    city.Name,
		StateName:   state.Name,
		CountryName: country.Name,
		CountryISO3: country.ISO3,
	}, nil
}
