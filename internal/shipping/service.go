// Package shipping implements the shipment API: batch creation with
// concurrent per-submission validation, and the filtered, paginated listing.
package shipping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"senvo-backend/internal/apperrors"
	"senvo-backend/internal/geo"
	"senvo-backend/internal/models"
)

type Store interface {
	CreateShipment(ctx context.Context, address *models.Address, shipment *models.Shipment, packages []models.Package) error
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Shipment, error)
	List(ctx context.Context, q ListQuery) ([]models.Shipment, int64, error)
}

type AddressResolver interface {
	Resolve(ctx context.Context, in geo.AddressInput) (*geo.Resolution, error)
}

type CarrierValidator interface {
	Validate(ctx context.Context, carrierName, shipmentNumber string) (*models.Carrier, error)
}

// Service orchestrates shipment creation and search.
type Service struct {
	store    Store
	resolver AddressResolver
	carriers CarrierValidator
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(store Store, resolver AddressResolver, carriers CarrierValidator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		resolver: resolver,
		carriers: carriers,
		logger:   logger,
		now:      time.Now,
	}
}

// List validates the price range, then runs the filtered query. The two 404
// conditions are distinguishable: no match at all versus a page past the end
// of a non-empty result set.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, apperrors.InvalidPriceRange(*q.MinPrice, *q.MaxPrice)
	}

	shipments, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "listing shipments")
	}
	if total == 0 {
		return nil, apperrors.NoShipmentsFound()
	}
	if len(shipments) == 0 {
		return nil, apperrors.NoMoreShipments()
	}

	return buildListResponse(q, total, newShipmentRecords(shipments)), nil
}

// validated holds one submission's resolution results, or the reason it was
// rejected.
type validated struct {
	resolution *geo.Resolution
	carrier    *models.Carrier
	failure    *apperrors.Error
}

// CreateBatch fans out validation across the batch, persists each valid
// submission in its own transaction and re-reads the created shipments with
// their full entity graph, newest first. A rejected submission never affects
// its siblings.
func (s *Service) CreateBatch(ctx context.Context, batch []ShipmentRequest) (*CreateResponse, error) {
	validations := make([]validated, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	for i := range batch {
		g.Go(func() error {
			return s.validateSubmission(gctx, &batch[i], &validations[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "validating batch")
	}

	var createdIDs []uuid.UUID
	for i := range batch {
		v := &validations[i]
		if v.failure != nil {
			s.logger.Info("submission rejected",
				zap.Int("index", i),
				zap.String("shipment_number", batch[i].ShipmentNumber),
				zap.String("reason", v.failure.Msg),
			)
			continue
		}

		address, shipment, packages := assemble(&batch[i], v)
		if err := s.store.CreateShipment(ctx, address, shipment, packages); err != nil {
			s.logger.Error("persisting shipment failed",
				zap.Int("index", i),
				zap.String("shipment_number", batch[i].ShipmentNumber),
				zap.Error(err),
			)
			continue
		}
		createdIDs = append(createdIDs, shipment.ID)
	}

	if len(createdIDs) == 0 {
		return nil, apperrors.NoShipmentsCreated()
	}

	shipments, err := s.store.FindByIDs(ctx, createdIDs)
	if err != nil {
		return nil, errors.Wrap(err, "reloading created shipments")
	}

	message := "All shipments created."
	if len(createdIDs) < len(batch) {
		message = fmt.Sprintf("%d of %d shipments created.", len(createdIDs), len(batch))
	}

	return &CreateResponse{
		Created: len(createdIDs),
		Message: message,
		Records: newShipmentRecords(shipments),
	}, nil
}

// validateSubmission runs the address resolver and the carrier validator
// concurrently for one submission. Validation failures are recorded on out;
// only infrastructure errors propagate and abort the batch.
func (s *Service) validateSubmission(ctx context.Context, req *ShipmentRequest, out *validated) error {
	if req.ShipmentDate.After(s.now()) {
		out.failure = apperrors.ShipmentDateInFuture()
		return nil
	}

	var (
		resolution  *geo.Resolution
		carrier     *models.Carrier
		addrFailure *apperrors.Error
		carrFailure *apperrors.Error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.resolver.Resolve(gctx, req.Address.toInput())
		if err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				addrFailure = appErr
				return nil
			}
			return err
		}
		resolution = res
		return nil
	})
	g.Go(func() error {
		c, err := s.carriers.Validate(gctx, req.Carrier, req.ShipmentNumber)
		if err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				carrFailure = appErr
				return nil
			}
			return err
		}
		carrier = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Address failures take precedence when both validators reject.
	switch {
	case addrFailure != nil:
		out.failure = addrFailure
	case carrFailure != nil:
		out.failure = carrFailure
	default:
		out.resolution = resolution
		out.carrier = carrier
	}
	return nil
}

// assemble builds the persistable entities for one validated submission.
func assemble(req *ShipmentRequest, v *validated) (*models.Address, *models.Shipment, []models.Package) {
	address := &models.Address{
		PostalCode:   req.Address.PostalCode,
		AddressLine1: req.Address.AddressLine1,
		AddressLine2: req.Address.AddressLine2,
		CityID:       v.resolution.CityID,
		StateID:      v.resolution.StateID,
		CountryID:    v.resolution.CountryID,
	}
	shipment := &models.Shipment{
		ShipmentNumber:  req.ShipmentNumber,
		ShipmentDate:    req.ShipmentDate.Time,
		Price:           req.Price,
		Currency:        req.Currency,
		TotalWeight:     req.TotalWeight,
		TotalWeightUnit: models.WeightUnit(req.TotalWeightUnit),
		CarrierID:       v.carrier.ID,
	}
	packages := make([]models.Package, 0, len(req.Packages))
	for _, p := range req.Packages {
		packages = append(packages, models.Package{
			Weight:         p.Weight,
			WeightUnit:     models.WeightUnit(p.WeightUnit),
			Length:         p.Length,
			Width:          p.Width,
			Height:         p.Height,
			DimensionsUnit: models.DimensionsUnit(p.DimensionsUnit),
		})
	}
	return address, shipment, packages
}
