package logging

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"senvo-backend/internal/config"
)

// New builds the application logger. Output goes to stdout and to a rotating
// file in cfg.LogsDirectory, one file per run.
func New(cfg *config.Config) (*zap.Logger, error) {
	runTimestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	logFile := fmt.Sprintf("%s/senvo-backend-%s.log", cfg.LogsDirectory, runTimestamp)

	lumberjackLogger := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB before it rolls
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	}

	writeSyncer := zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(os.Stdout),
		zapcore.AddSync(lumberjackLogger),
	)
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return logger, nil
}

// RequestLogger logs every request as a single line with method, path, status
// and latency. An error returned by the chain is passed to the app's error
// handler before the line is written, so the logged status and bytes_out are
// those of the response the client receives.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	var (
		once       sync.Once
		errHandler fiber.ErrorHandler
	)
	return func(c *fiber.Ctx) error {
		once.Do(func() {
			errHandler = c.App().ErrorHandler
		})

		start := time.Now()
		path := c.Path()
		query := string(c.Request().URI().QueryString())

		chainErr := c.Next()
		if chainErr != nil {
			if err := errHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		status := c.Response().StatusCode()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Float64("latency_ms", float64(latency.Microseconds())/1000.0),
			zap.String("client_ip", c.IP()),
			zap.String("user_agent", string(c.Request().Header.UserAgent())),
			zap.Int("bytes_in", len(c.Request().Body())),
			zap.Int("bytes_out", len(c.Response().Body())),
		}
		if chainErr != nil {
			fields = append(fields, zap.String("error", chainErr.Error()))
		}

		if chainErr != nil || status >= fiber.StatusInternalServerError {
			logger.Error("request", fields...)
		} else {
			logger.Info("request", fields...)
		}

		return nil
	}
}
