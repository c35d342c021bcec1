package utils

import (
	"log"
	"sync"

	"tourguide/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. Prefer GetLogger.
var Logger *zap.Logger

var loggerMu sync.Mutex

// loggerConfig picks JSON output in production and colored console output elsewhere.
// An unparsable level keeps the environment default.
func loggerConfig(production bool, level string) zap.Config {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	}

	if level != "" {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}
	return cfg
}

func buildLogger() (*zap.Logger, error) {
	cfg := loggerConfig(config.IsProduction(), config.AppConfig.LogLevel)
	return cfg.Build(zap.Fields(
		zap.String("service", "tourguide"),
		zap.String("env", config.GetEnv()),
	))
}

// InitializeLogger (re)builds the global logger from config.AppConfig and installs it as zap.L().
func InitializeLogger() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	installLogger()
}

func installLogger() {
	logger, err := buildLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = logger
	zap.ReplaceGlobals(logger)
}

// GetLogger returns the global logger, building it on first use.
func GetLogger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if Logger == nil {
		installLogger()
	}
	return Logger
}
