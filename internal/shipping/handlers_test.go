package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senvo-backend/internal/apperrors"
)

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler})
	app.Get("/shipment/", ListShipmentsHandler(svc))
	app.Post("/shipment/", CreateShipmentsHandler(svc))
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func doPost(t *testing.T, app *fiber.App, target string, payload any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func detailString(t *testing.T, body []byte) string {
	t.Helper()
	var out struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Detail
}

func TestListHandlerRejectsInvertedPriceRange(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)

	resp, body := doGet(t, app, "/shipment/?min_price=1000&max_price=100")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The minimum price (1000) cannot be greater than the maximum price (100).", detailString(t, body))
	assert.Zero(t, f.store.listCalls)
}

func TestListHandlerNoShipmentsFound(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)

	resp, body := doGet(t, app, "/shipment/")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No shipments found.", detailString(t, body))
}

func TestListHandlerNoMoreShipments(t *testing.T) {
	f := newServiceFixture()
	f.store.listTotal = 3
	app := newTestApp(f.svc)

	resp, body := doGet(t, app, "/shipment/?page=5")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No more shipments.", detailString(t, body))
}

func TestListHandlerRejectsMalformedParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
		msg    string
	}{
		{"zero page", "/shipment/?page=0", "The page must be a positive integer."},
		{"non-numeric page", "/shipment/?page=abc", "The page must be a positive integer."},
		{"zero limit", "/shipment/?limit=0", "The limit must be between 1 and 100."},
		{"limit above cap", "/shipment/?limit=101", "The limit must be between 1 and 100."},
		{"bad start datetime", "/shipment/?start_datetime=yesterday", "The start_datetime must be in ISO 8601 format."},
		{"bad end datetime", "/shipment/?end_datetime=tomorrow", "The end_datetime must be in ISO 8601 format."},
		{"negative min price", "/shipment/?min_price=-1", "The min_price must be between 0 and 1,000,000."},
		{"max price above cap", "/shipment/?max_price=1000001", "The max_price must be between 0 and 1,000,000."},
		{"empty carrier filter", "/shipment/?carriers=", "Each carrier filter must be between 1 and 128 symbols."},
	}

	f := newServiceFixture()
	app := newTestApp(f.svc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doGet(t, app, tt.target)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.msg, detailString(t, body))
		})
	}
	assert.Zero(t, f.store.listCalls)
}

func TestListHandlerReturnsEnvelope(t *testing.T) {
	f := newServiceFixture()
	created, err := f.svc.CreateBatch(context.Background(), []ShipmentRequest{validRequest("1Z12345E1512345676")})
	require.NoError(t, err)
	shipments, err := f.store.FindByIDs(context.Background(), []uuid.UUID{created.Records[0].ID})
	require.NoError(t, err)
	f.store.listShipments = shipments
	f.store.listTotal = 1
	app := newTestApp(f.svc)

	resp, body := doGet(t, app, "/shipment/?page=1&limit=10&carriers=ups&min_price=0")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out ListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.Page)
	assert.Nil(t, out.NextPage)
	assert.Equal(t, 1, out.LastPage)
	assert.Equal(t, int64(1), out.Total)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "1Z12345E1512345676", out.Records[0].ShipmentNumber)
	assert.Equal(t, "ups", out.Records[0].Carrier)
	assert.Equal(t, "USA", out.Records[0].Address.Country)
}

func TestCreateHandlerFullBatchReturns201(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)
	batch := []ShipmentRequest{
		validRequest("1Z12345E1512345676"),
		validRequest("1Z12345E1512345677"),
	}

	resp, body := doPost(t, app, "/shipment/", batch)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var out CreateResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 2, out.Created)
	assert.Equal(t, "All shipments created.", out.Message)
	assert.Len(t, out.Records, 2)
}

func TestCreateHandlerPartialBatchReturns200(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)
	bad := validRequest("1Z12345E1512345677")
	bad.Carrier = "pigeon-post"
	batch := []ShipmentRequest{validRequest("1Z12345E1512345676"), bad}

	resp, body := doPost(t, app, "/shipment/", batch)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out CreateResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.Created)
	assert.Equal(t, "1 of 2 shipments created.", out.Message)
	assert.Len(t, out.Records, 1)
}

func TestCreateHandlerAllRejected(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)
	bad := validRequest("1Z12345E1512345676")
	bad.Carrier = "pigeon-post"

	resp, body := doPost(t, app, "/shipment/", []ShipmentRequest{bad})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No shipments created.", detailString(t, body))
}

func TestCreateHandlerMalformedBody(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)

	req := httptest.NewRequest(http.MethodPost, "/shipment/", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body.", detailString(t, body))
}

func TestCreateHandlerAcceptsZonelessDate(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)
	payload := `[{
		"shipment_number": "1Z12345E1512345676",
		"shipment_date": "2024-10-01T12:00:00",
		"price": 45.5,
		"currency": "USD",
		"total_weight": 12.5,
		"total_weight_unit": "KG",
		"carrier": "ups",
		"address": {
			"postal_code": "90001",
			"address_line_1": "1234 Main St.",
			"city": "Los Angeles",
			"state": "California",
			"country": {"iso3": "USA"}
		},
		"packages": [
			{"weight": 500, "weight_unit": "GRAM", "length": 10, "width": 5, "height": 4, "dimensions_unit": "CM"}
		]
	}]`

	req := httptest.NewRequest(http.MethodPost, "/shipment/", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, f.store.saved, 1)
	assert.True(t, f.store.saved[0].shipment.ShipmentDate.Equal(time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)))
}

func TestCreateHandlerEmptyBatch(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)

	resp, body := doPost(t, app, "/shipment/", []ShipmentRequest{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The batch must contain between 1 and 100 shipments.", detailString(t, body))
}

func TestCreateHandlerStructuralViolation(t *testing.T) {
	f := newServiceFixture()
	app := newTestApp(f.svc)
	bad := validRequest("1Z12345E1512345676")
	bad.Price = 0

	resp, body := doPost(t, app, "/shipment/", []ShipmentRequest{bad})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The price of the shipment should be between 0.1 and 1,000,000.", detailString(t, body))
	assert.Empty(t, f.store.saved)
}
