// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import (
	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/store"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to spawn
// their goroutines internally and return. Stop requests termination and
// blocks until the worker has finished.
type Worker interface {
	Run()
	Stop()
}

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the application.
func NewWorkers(telemetryStore *telemetry.Store, storages *store.Storages, cfg config.Telemetry, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewRetentionSweeper(telemetryStore, storages.MetricArchive, cfg.SweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
