package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"senvo-backend/internal/apperrors"
	"senvo-backend/internal/carriers"
	"senvo-backend/internal/config"
	"senvo-backend/internal/database"
	"senvo-backend/internal/docs"
	"senvo-backend/internal/geo"
	"senvo-backend/internal/logging"
	"senvo-backend/internal/shipping"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading configuration: ", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal("initializing logger: ", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}

	resolver := geo.NewResolver(geo.NewGormStore(db))
	validator := carriers.NewValidator(carriers.NewGormStore(db), logger)
	shipments := shipping.NewService(shipping.NewGormStore(db), resolver, validator, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		IdleTimeout:  time.Minute,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(logging.RequestLogger(logger))

	// Bound every request so stuck database calls cannot pin a connection.
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), cfg.RequestTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/docs", fiber.StatusTemporaryRedirect)
	})
	app.Get("/docs", docs.UIHandler())
	app.Get("/docs/openapi.json", docs.SpecHandler())

	shipment := app.Group("/shipment")
	shipment.Get("/", shipping.ListShipmentsHandler(shipments))
	shipment.Post("/", shipping.CreateShipmentsHandler(shipments))

	go func() {
		logger.Info("server listening", zap.String("port", cfg.HTTPPort))
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
