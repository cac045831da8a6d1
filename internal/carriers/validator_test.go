package carriers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senvo-backend/internal/apperrors"
	"senvo-backend/internal/models"
)

type fakeStore struct {
	carriers map[string]*models.Carrier
}

func (f *fakeStore) FindByName(_ context.Context, name string) (*models.Carrier, error) {
	return f.carriers[name], nil
}

func newStore(carriers ...*models.Carrier) *fakeStore {
	byName := make(map[string]*models.Carrier, len(carriers))
	for _, c := range carriers {
		byName[c.Name] = c
	}
	return &fakeStore{carriers: byName}
}

func carrier(name string, patterns models.PatternSet) *models.Carrier {
	return &models.Carrier{ID: uuid.New(), Name: name, Patterns: patterns}
}

func TestValidateAcceptsMatchingNumber(t *testing.T) {
	ups := carrier("ups", models.PatternSet{"standard": `^1Z[A-Za-z0-9]{16}$`})
	v := NewValidator(newStore(ups), nil)

	got, err := v.Validate(context.Background(), "ups", "1Z12345E1512345676")
	require.NoError(t, err)
	assert.Equal(t, ups.ID, got.ID)
}

func TestValidateRejectsMismatchedNumber(t *testing.T) {
	ups := carrier("ups", models.PatternSet{"standard": `^1Z[A-Za-z0-9]{16}$`})
	v := NewValidator(newStore(ups), nil)

	_, err := v.Validate(context.Background(), "ups", "12345")
	require.Error(t, err)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Shipment number '12345' does not match any pattern for carrier 'ups'.", appErr.Msg)
	assert.Equal(t, []string{"body", "shipment_number"}, appErr.Loc)
}

func TestValidateUnknownCarrier(t *testing.T) {
	v := NewValidator(newStore(), nil)

	_, err := v.Validate(context.Background(), "pigeon-post", "1Z12345E1512345676")
	require.Error(t, err)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Carrier 'pigeon-post' does not exist.", appErr.Msg)
	assert.Equal(t, []string{"body", "carrier"}, appErr.Loc)
}

func TestValidateMatchesAnyPattern(t *testing.T) {
	fedex := carrier("fedex", models.PatternSet{
		"standard":  `^\d{12,14}$`,
		"ground":    `^\d{15,20}$`,
		"smartpost": `^[0-9]{20}$`,
	})
	v := NewValidator(newStore(fedex), nil)

	_, err := v.Validate(context.Background(), "fedex", "123456789012345")
	assert.NoError(t, err, "ground pattern should accept a 15-digit number")

	_, err = v.Validate(context.Background(), "fedex", "123456789012")
	assert.NoError(t, err, "standard pattern should accept a 12-digit number")
}

func TestValidateSkipsInvalidPattern(t *testing.T) {
	dhl := carrier("dhl-express", models.PatternSet{
		"broken":   `([`,
		"standard": `^\d{10}$`,
	})
	v := NewValidator(newStore(dhl), nil)

	_, err := v.Validate(context.Background(), "dhl-express", "0123456789")
	assert.NoError(t, err, "valid pattern should still be consulted")

	_, err = v.Validate(context.Background(), "dhl-express", "not-a-number")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Msg, "does not match any pattern")
}

func TestValidateRequiresFullStringMatch(t *testing.T) {
	loose := carrier("loose", models.PatternSet{"digits": `\d{10}`})
	v := NewValidator(newStore(loose), nil)

	_, err := v.Validate(context.Background(), "loose", "0123456789")
	assert.NoError(t, err)

	_, err = v.Validate(context.Background(), "loose", "0123456789EXTRA")
	assert.Error(t, err, "trailing characters must not be accepted")
}
