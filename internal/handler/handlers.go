// Package handler aggregates the transport-level handlers of the
// application.
package handler

import (
	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/handler/http"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/service"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, telemetryStore *telemetry.Store, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, telemetryStore, cfg.App, logger),
	}, nil
}
