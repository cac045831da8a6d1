package logging

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"senvo-backend/internal/apperrors"
	"senvo-backend/internal/config"
)

func TestNewWritesToLogsDirectory(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(&config.Config{LogsDirectory: dir})
	require.NoError(t, err)

	logger.Info("started", zap.String("port", "8080"))
	_ = logger.Sync() // stdout sync may fail on some platforms, file is flushed per write

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "senvo-backend-"))

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "started")
	assert.Contains(t, string(content), "8080")
}

func TestRequestLoggerRecordsResponseOutcome(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler})
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "up"})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NoShipmentsFound()
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantLevel  zapcore.Level
		wantErr    bool
	}{
		{"success", "/ok", fiber.StatusOK, zapcore.InfoLevel, false},
		{"catalog error", "/missing", fiber.StatusNotFound, zapcore.ErrorLevel, true},
		{"unexpected error", "/broken", fiber.StatusInternalServerError, zapcore.ErrorLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := observed.Len()
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil), -1)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			entries := observed.All()
			require.Len(t, entries, before+1)
			entry := entries[before]
			assert.Equal(t, tt.wantLevel, entry.Level)

			logged := entry.ContextMap()
			assert.Equal(t, int64(tt.wantStatus), logged["status"])
			assert.Equal(t, int64(len(body)), logged["bytes_out"])
			if tt.wantErr {
				assert.NotEmpty(t, logged["error"])
			} else {
				assert.NotContains(t, logged, "error")
			}
		})
	}
}
