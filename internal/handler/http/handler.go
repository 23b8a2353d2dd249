package http

import (
	"time"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/service"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
	"github.com/MKhiriev/go-shop-core/internal/utils"
)

type Handler struct {
	services  *service.Services
	telemetry *telemetry.Store

	// requestIDs produces the per-request identifiers attached by the
	// request-id middleware.
	requestIDs *utils.RequestIDGenerator

	// environment and version are reported by the system-stats endpoint.
	environment string
	version     string

	// startedAt anchors the uptime reported by the system-stats endpoint.
	startedAt time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, telemetryStore *telemetry.Store, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		telemetry:   telemetryStore,
		requestIDs:  utils.NewRequestIDGenerator(),
		environment: cfg.Environment,
		version:     cfg.Version,
		startedAt:   time.Now(),
		logger:      logger,
	}
}
