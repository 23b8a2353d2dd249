// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/store"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
)

const defaultSweepInterval = 5 * time.Minute

// RetentionSweeper periodically evicts metric samples that fell out of the
// telemetry retention window and hands them to the archive, keeping the
// in-memory store bounded while preserving history for offline analysis.
//
// Archive failures are logged and the evicted batch is dropped; the sweeper
// never blocks or breaks the live telemetry path.
type RetentionSweeper struct {
	telemetryStore *telemetry.Store
	archive        store.MetricArchive
	interval       time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

func NewRetentionSweeper(telemetryStore *telemetry.Store, archive store.MetricArchive, interval time.Duration, logger *logger.Logger) *RetentionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &RetentionSweeper{
		telemetryStore: telemetryStore,
		archive:        archive,
		interval:       interval,
		done:           make(chan struct{}),
		logger:         logger,
	}
}

// Run starts the sweep loop on its own goroutine and returns immediately.
func (s *RetentionSweeper) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
}

// Stop requests termination and blocks until the loop has exited.
// Safe to call before Run and more than once.
func (s *RetentionSweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *RetentionSweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// final sweep so a clean shutdown does not lose the tail
			s.sweep(context.Background())
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	evicted := s.telemetryStore.Sweep()
	if len(evicted) == 0 {
		return
	}

	if err := s.archive.ArchiveSamples(ctx, evicted); err != nil {
		s.logger.Error().Err(err).Int("samples", len(evicted)).Msg("archiving evicted samples failed")
		return
	}

	s.logger.Debug().Int("samples", len(evicted)).Msg("evicted samples archived")
}
