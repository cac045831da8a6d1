package carriers

import "senvo-backend/internal/models"

// Builtin returns the administratively maintained carrier set with the
// tracking-number patterns each carrier publishes. cmd/seed inserts these
// into an empty database.
func Builtin() []models.Carrier {
	return []models.Carrier{
		{
			Name: "dhl-express",
			Patterns: models.PatternSet{
				"standard": `^\d{10}$`,
				"express":  `^[A-Za-z0-9\-]{13,20}$`,
			},
		},
		{
			Name: "ups",
			Patterns: models.PatternSet{
				"standard":      `^1Z[A-Za-z0-9]{16}$`,
				"freight":       `^\d{9}$`,
				"international": `^\d{18}$`,
			},
		},
		{
			Name: "fedex",
			Patterns: models.PatternSet{
				"standard":  `^\d{12,14}$`,
				"ground":    `^\d{15,20}$`,
				"smartpost": `^[0-9]{20}$`,
			},
		},
	}
}
