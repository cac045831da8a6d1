package geo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"senvo-backend/internal/models"
)

// Store provides the reference-data lookups the resolver needs. Single-row
// lookups return (nil, nil) when no row matches.
type Store interface {
	FindCountry(ctx context.Context, field CountryField, value string) (*models.Country, error)
	FindState(ctx context.Context, name string, countryID uuid.UUID) (*models.State, error)
	StateExists(ctx context.Context, name string) (bool, error)
	FindCity(ctx context.Context, name string, stateID, countryID uuid.UUID) (*models.City, error)
	CityExistsInState(ctx context.Context, name string, stateID uuid.UUID) (bool, error)
	CityExists(ctx context.Context, name string) (bool, error)
}

// GormStore implements Store on top of the reference tables.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindCountry(ctx context.Context, field CountryField, value string) (*models.Country, error) {
	var country models.Country
	err := s.db.WithContext(ctx).
		Where(map[string]any{string(field): value}).
		First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (s *GormStore) FindState(ctx context.Context, name string, countryID uuid.UUID) (*models.State, error) {
	var state models.State
	err := s.db.WithContext(ctx).
		Where("name = ? AND country_id = ?", name, countryID).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *GormStore) StateExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.State{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) FindCity(ctx context.Context, name string, stateID, countryID uuid.UUID) (*models.City, error) {
	var city models.City
	err := s.db.WithContext(ctx).
		Where("name = ? AND state_id = ? AND country_id = ?", name, stateID, countryID).
		First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

func (s *GormStore) CityExistsInState(ctx context.Context, name string, stateID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.City{}).
		Where("name = ? AND state_id = ?", name, stateID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CityExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.City{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
