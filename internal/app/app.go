package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spectriclabs/hotcold/internal/api"
	"github.com/spectriclabs/hotcold/internal/config"
)

func Run() {
	cfg, err := ParseCLI(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := SetupLogger(cfg.Debug)
	defer logger.Sync()

	// Setup API
	hcapi := api.NewAPI(&cfg, logger)

	// Setup HTTP server
	e := SetupServer(hcapi, prometheus.NewRegistry())

	// Run server
	address := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("Starting server", zap.String("address", address))
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Stopping server due to error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("Shutting down the server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Error shutting down", zap.Error(err))
	}
}

// ParseCLI reads the flags in args together with the environment and the
// optional config file.
func ParseCLI(args []string) (config.Config, error) {
	return config.Load(config.NewFlagSet("hotcold"), args)
}

// SetupLogger sets up the zap.Logger structured logger.
func SetupLogger(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	logger, logErr := zap.Config{
		Encoding:    "json",
		Level:       zap.NewAtomicLevelAt(level),
		OutputPaths: []string{"stdout"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "message",
			LevelKey:    "level",
			EncodeLevel: zapcore.CapitalLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.ISO8601TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}.Build()
	if logErr != nil {
		log.Fatalf("Couldn't setup logger: %v", logErr)
	}

	return logger
}

// SetupServer registers the routes and middleware. Request metrics are
// registered with reg and served on /metrics.
func SetupServer(api *api.API, reg *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Debug = api.Cfg.Debug

	// Setup Middleware
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "hotcold",
		Registerer: reg,
	}))

	// Color table routes
	e.GET("/colormap/algorithms", api.GetAlgorithms)
	e.GET("/colormap/:algorithm", api.GetColormap)
	e.GET("/colormap/:algorithm/map", api.GetMappedData)

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))

	return e
}
