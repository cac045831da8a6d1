package shipping

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"senvo-backend/internal/models"
)

// reloadLimit bounds the post-insert re-read of a batch.
const reloadLimit = 100

// GormStore persists shipments and serves the filtered listing.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateShipment inserts one submission's address, shipment and packages in a
// single transaction, so a failure partway through never leaves a partial
// graph behind.
func (s *GormStore) CreateShipment(ctx context.Context, address *models.Address, shipment *models.Shipment, packages []models.Package) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(address).Error; err != nil {
			return err
		}
		shipment.AddressID = address.ID
		if err := tx.Create(shipment).Error; err != nil {
			return err
		}
		for i := range packages {
			packages[i].ShipmentID = shipment.ID
		}
		return tx.Create(&packages).Error
	})
}

// FindByIDs re-reads freshly persisted shipments with their full entity
// graph, newest first.
func (s *GormStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := s.db.WithContext(ctx).
		Where("shipments.id IN ?", ids).
		Preload("Address.City").
		Preload("Address.State").
		Preload("Address.Country").
		Preload("Packages").
		Preload("Carrier").
		Order("shipments.created_at DESC").
		Limit(reloadLimit).
		Find(&shipments).Error
	return shipments, err
}

// List runs the count and data queries with identical predicates. A zero
// total short-circuits before the eager-load data query.
func (s *GormStore) List(ctx context.Context, q ListQuery) ([]models.Shipment, int64, error) {
	filtered := func(dbq *gorm.DB) *gorm.DB {
		if len(q.Carriers) > 0 {
			dbq = dbq.
				Joins("JOIN carriers ON carriers.id = shipments.carrier_id").
				Where("carriers.name IN ?", q.Carriers)
		}
		if q.StartDatetime != nil {
			dbq = dbq.Where("shipments.shipment_date >= ?", *q.StartDatetime)
		}
		if q.EndDatetime != nil {
			dbq = dbq.Where("shipments.shipment_date <= ?", *q.EndDatetime)
		}
		if q.MinPrice != nil {
			dbq = dbq.Where("shipments.price >= ?", *q.MinPrice)
		}
		if q.MaxPrice != nil {
			dbq = dbq.Where("shipments.price <= ?", *q.MaxPrice)
		}
		return dbq
	}

	var total int64
	if err := filtered(s.db.WithContext(ctx).Model(&models.Shipment{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	var shipments []models.Shipment
	err := filtered(s.db.WithContext(ctx).Model(&models.Shipment{})).
		Preload("Address.City").
		Preload("Address.State").
		Preload("Address.Country").
		Preload("Packages").
		Preload("Carrier").
		Order("shipments.created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&shipments).Error
	if err != nil {
		return nil, 0, err
	}

	return shipments, total, nil
}
