package shipping

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

// GET /shipment/
func ListShipmentsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := ListQuery{Page: 1, Limit: 10}

		if v := c.Query("page"); v != "" {
			page, err := strconv.Atoi(v)
			if err != nil || page < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "The page must be a positive integer.")
			}
			q.Page = page
		}
		if v := c.Query("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 1 || limit > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "The limit must be between 1 and 100.")
			}
			q.Limit = limit
		}
		if v := c.Query("start_datetime"); v != "" {
			t, err := parseDatetime(v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "The start_datetime must be in ISO 8601 format.")
			}
			q.StartDatetime = &t
		}
		if v := c.Query("end_datetime"); v != "" {
			t, err := parseDatetime(v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "The end_datetime must be in ISO 8601 format.")
			}
			q.EndDatetime = &t
		}
		if v := c.Query("min_price"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil || p < 0 || p > 1_000_000 {
				return fiber.NewError(fiber.StatusBadRequest, "The min_price must be between 0 and 1,000,000.")
			}
			q.MinPrice = &p
		}
		if v := c.Query("max_price"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil || p < 0 || p > 1_000_000 {
				return fiber.NewError(fiber.StatusBadRequest, "The max_price must be between 0 and 1,000,000.")
			}
			q.MaxPrice = &p
		}
		for _, raw := range c.Context().QueryArgs().PeekMulti("carriers") {
			name := string(raw)
			if n := utf8.RuneCountInString(name); n < 1 || n > 128 {
				return fiber.NewError(fiber.StatusBadRequest, "Each carrier filter must be between 1 and 128 symbols.")
			}
			q.Carriers = append(q.Carriers, name)
		}

		resp, err := svc.List(c.UserContext(), q)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}
}

// POST /shipment/
func CreateShipmentsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var batch []ShipmentRequest
		if err := c.BodyParser(&batch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
		}
		if err := ValidateBatch(batch); err != nil {
			return err
		}

		resp, err := svc.CreateBatch(c.UserContext(), batch)
		if err != nil {
			return err
		}

		status := fiber.StatusCreated
		if resp.Created < len(batch) {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(resp)
	}
}

// parseDatetime accepts a full ISO 8601 timestamp, a naive timestamp without
// zone, or a bare date.
func parseDatetime(v string) (time.Time, error) {
	var err error
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
