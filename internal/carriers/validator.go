// Package carriers validates claimed tracking numbers against each carrier's
// registered pattern set.
package carriers

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"senvo-backend/internal/apperrors"
	"senvo-backend/internal/models"
)

type Validator struct {
	store  Store
	logger *zap.Logger
}

func NewValidator(store Store, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{store: store, logger: logger}
}

// Validate resolves the carrier by exact name and tests the shipment number
// against its patterns. Match-any semantics: the number is accepted as soon as
// one pattern matches the full string. A pattern that fails to compile is
// skipped with a warning rather than failing the request.
func (v *Validator) Validate(ctx context.Context, carrierName, shipmentNumber string) (*models.Carrier, error) {
	carrier, err := v.store.FindByName(ctx, carrierName)
	if err != nil {
		return nil, errors.Wrap(err, "looking up carrier")
	}
	if carrier == nil {
		return nil, apperrors.CarrierNotFound(carrierName)
	}

	for label, pattern := range carrier.Patterns {
		re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
		if err != nil {
			v.logger.Warn("skipping invalid tracking pattern",
				zap.String("carrier", carrier.Name),
				zap.String("label", label),
				zap.Error(err),
			)
			continue
		}
		if re.MatchString(shipmentNumber) {
			return carrier, nil
		}
	}

	return nil, apperrors.ShipmentNumberMismatch(carrierName, shipmentNumber)
}
