package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-schedule-viewer/internal/config"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/json_types"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields)         {}
func (nopLogger) Info(event string, fields out.LogFields)          {}
func (nopLogger) Warn(event string, fields out.LogFields)          {}
func (nopLogger) Error(event string, fields out.LogFields)         {}
func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newTestAdapter(t *testing.T) *CacheAdapter {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 10

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, adapter)
	return adapter
}

func dayGridFor(doctorID string, day time.Time) *domain.DayGrid {
	return &domain.DayGrid{
		DoctorID: doctorID,
		Date:     json_types.Date{Date: day},
	}
}

func weekGridFor(doctorID string, weekStart time.Time) *domain.WeekGrid {
	return &domain.WeekGrid{
		DoctorID:  doctorID,
		WeekStart: json_types.Date{Date: weekStart},
	}
}

func TestNewCacheAdapter_Disabled(t *testing.T) {
	cfg := &config.Config{}
	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	require.Nil(t, adapter)
}

func TestCacheAdapter_DayGridRoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	_, exists := adapter.GetDayGrid(ctx, "doc-1", day)
	require.False(t, exists)

	grid := dayGridFor("doc-1", day)
	adapter.StoreDayGrid(ctx, grid)

	cached, exists := adapter.GetDayGrid(ctx, "doc-1", day)
	require.True(t, exists)
	require.Same(t, grid, cached)

	// Другой день и другой врач не задеты
	_, exists = adapter.GetDayGrid(ctx, "doc-1", day.AddDate(0, 0, 1))
	require.False(t, exists)
	_, exists = adapter.GetDayGrid(ctx, "doc-2", day)
	require.False(t, exists)
}

func TestCacheAdapter_WeekGridRoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	weekStart := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	grid := weekGridFor("doc-1", weekStart)
	adapter.StoreWeekGrid(ctx, grid)

	cached, exists := adapter.GetWeekGrid(ctx, "doc-1", weekStart)
	require.True(t, exists)
	require.Same(t, grid, cached)
}

func TestCacheAdapter_InvalidateDoctor(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	adapter.StoreDayGrid(ctx, dayGridFor("doc-1", day))
	adapter.StoreWeekGrid(ctx, weekGridFor("doc-1", day))
	adapter.StoreDayGrid(ctx, dayGridFor("doc-2", day))

	adapter.InvalidateDoctor(ctx, "doc-1")

	_, exists := adapter.GetDayGrid(ctx, "doc-1", day)
	require.False(t, exists)
	_, exists = adapter.GetWeekGrid(ctx, "doc-1", day)
	require.False(t, exists)

	// Сетки других врачей остаются
	_, exists = adapter.GetDayGrid(ctx, "doc-2", day)
	require.True(t, exists)
}

func TestCacheAdapter_InvalidateAll(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	adapter.StoreDayGrid(ctx, dayGridFor("doc-1", day))
	adapter.StoreDayGrid(ctx, dayGridFor("doc-2", day))
	adapter.StoreWeekGrid(ctx, weekGridFor("doc-1", day))

	adapter.InvalidateAll(ctx)

	_, exists := adapter.GetDayGrid(ctx, "doc-1", day)
	require.False(t, exists)
	_, exists = adapter.GetDayGrid(ctx, "doc-2", day)
	require.False(t, exists)
	_, exists = adapter.GetWeekGrid(ctx, "doc-1", day)
	require.False(t, exists)
}
