package carriers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"senvo-backend/internal/models"
)

// Store looks up carrier reference data. FindByName returns (nil, nil) when no
// carrier matches.
type Store interface {
	FindByName(ctx context.Context, name string) (*models.Carrier, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByName(ctx context.Context, name string) (*models.Carrier, error) {
	var carrier models.Carrier
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&carrier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &carrier, nil
}
