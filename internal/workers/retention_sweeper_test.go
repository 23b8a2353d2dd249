package workers

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/store/mocks"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
	"github.com/MKhiriev/go-shop-core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRetentionSweeper_ArchivesEvictedSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	archive := mocks.NewMockMetricArchive(ctrl)

	telemetryStore := telemetry.NewStore(config.Telemetry{RetentionHours: 1}, logger.Nop())

	// plant a sample that is already outside the retention window
	recordAt(telemetryStore, time.Now().Add(-2*time.Hour))

	archived := make(chan []models.MetricSample, 1)
	archive.EXPECT().
		ArchiveSamples(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ any, samples []models.MetricSample) error {
			archived <- samples
			return nil
		})

	sweeper := NewRetentionSweeper(telemetryStore, archive, 10*time.Millisecond, logger.Nop())
	sweeper.Run()
	defer sweeper.Stop()

	select {
	case samples := <-archived:
		require.Len(t, samples, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not archive the evicted sample")
	}
}

func TestRetentionSweeper_StopRunsFinalSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	archive := mocks.NewMockMetricArchive(ctrl)

	telemetryStore := telemetry.NewStore(config.Telemetry{RetentionHours: 1}, logger.Nop())
	recordAt(telemetryStore, time.Now().Add(-2*time.Hour))

	archive.EXPECT().
		ArchiveSamples(gomock.Any(), gomock.Len(1)).
		Return(nil)

	// interval far longer than the test, so only the shutdown sweep fires
	sweeper := NewRetentionSweeper(telemetryStore, archive, time.Hour, logger.Nop())
	sweeper.Run()
	sweeper.Stop()
}

func TestRetentionSweeper_StopBeforeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := NewRetentionSweeper(nil, mocks.NewMockMetricArchive(ctrl), time.Hour, logger.Nop())

	assert.NotPanics(t, func() { sweeper.Stop() })
}

// recordAt inserts a sample with the given timestamp by temporarily shifting
// the store clock.
func recordAt(telemetryStore *telemetry.Store, at time.Time) {
	telemetryStore.SetClock(func() time.Time { return at })
	telemetryStore.RecordRequest("/api/orders", "GET", 200, 10, "")
	telemetryStore.SetClock(time.Now)
}
