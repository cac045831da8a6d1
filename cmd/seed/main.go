package main

import (
	"encoding/json"
	"log"
	"os"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"senvo-backend/internal/carriers"
	"senvo-backend/internal/config"
	"senvo-backend/internal/database"
	"senvo-backend/internal/logging"
	"senvo-backend/internal/models"
)

type stateRow struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

type countryRow struct {
	Name        string     `json:"name"`
	NumericCode string     `json:"numeric_code"`
	ISO2        string     `json:"iso2"`
	ISO3        string     `json:"iso3"`
	States      []stateRow `json:"states"`
}

var (
	numericCodePattern = regexp.MustCompile(`^[0-9]{3}$`)
	iso2CodePattern    = regexp.MustCompile(`^[A-Za-z]{2}$`)
	iso3CodePattern    = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// valid reports whether the row passes the same format checks the API applies
// to country selectors.
func (r countryRow) valid() bool {
	if n := utf8.RuneCountInString(r.Name); n < 2 || n > 100 {
		return false
	}
	return numericCodePattern.MatchString(r.NumericCode) &&
		iso2CodePattern.MatchString(r.ISO2) &&
		iso3CodePattern.MatchString(r.ISO3)
}

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "load reference data into the senvo database",
		Commands: []*cli.Command{
			{
				Name:  "countries",
				Usage: "import countries, states and cities from a JSON dump",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Value: "data/countries_states_cities.json",
						Usage: "path to the countries JSON dump",
					},
				},
				Action: seedCountries,
			},
			{
				Name:   "carriers",
				Usage:  "insert the built-in carriers with their tracking number patterns",
				Action: seedCarriers,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup() (*gorm.DB, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading configuration")
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "initializing logger")
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "connecting to database")
	}
	return db, logger, nil
}

func seedCarriers(c *cli.Context) error {
	db, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	seeded := carriers.Builtin()
	if err := db.WithContext(c.Context).Create(&seeded).Error; err != nil {
		return errors.Wrap(err, "inserting carriers")
	}
	logger.Info("carrier records created", zap.Int("carriers", len(seeded)))
	return nil
}

func seedCountries(c *cli.Context) error {
	db, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	raw, err := os.ReadFile(c.String("file"))
	if err != nil {
		return errors.Wrap(err, "reading countries dump")
	}
	var rows []countryRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return errors.Wrap(err, "parsing countries dump")
	}

	start := time.Now()
	var countriesCount, statesCount, citiesCount int

	err = db.WithContext(c.Context).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Country{}).Count(&existing).Error; err != nil {
			return errors.Wrap(err, "counting countries")
		}
		if existing > 0 {
			logger.Info("countries already exist in the database")
			return nil
		}

		for _, row := range rows {
			if !row.valid() {
				logger.Warn("skipping malformed country",
					zap.String("name", row.Name),
					zap.String("code", row.NumericCode),
				)
				continue
			}
			country := models.Country{
				Name: row.Name,
				Code: row.NumericCode,
				ISO2: strings.ToUpper(row.ISO2),
				ISO3: strings.ToUpper(row.ISO3),
			}
			if err := tx.Create(&country).Error; err != nil {
				return errors.Wrapf(err, "inserting country %q", row.Name)
			}
			countriesCount++

			for _, stateItem := range row.States {
				state := models.State{Name: stateItem.Name, CountryID: country.ID}
				if err := tx.Create(&state).Error; err != nil {
					return errors.Wrapf(err, "inserting state %q", stateItem.Name)
				}
				statesCount++

				if len(stateItem.Cities) == 0 {
					continue
				}
				cities := make([]models.City, 0, len(stateItem.Cities))
				for _, cityName := range stateItem.Cities {
					cities = append(cities, models.City{
						Name:      cityName,
						StateID:   state.ID,
						CountryID: country.ID,
					})
				}
				if err := tx.CreateInBatches(&cities, 500).Error; err != nil {
					return errors.Wrapf(err, "inserting cities of %q", stateItem.Name)
				}
				citiesCount += len(cities)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("seed complete",
		zap.Int("countries", countriesCount),
		zap.Int("states", statesCount),
		zap.Int("cities", citiesCount),
		zap.Int("total", countriesCount+statesCount+citiesCount),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
