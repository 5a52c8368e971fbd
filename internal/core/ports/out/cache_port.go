package out

import (
	"context"
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
)

// CachePort - кэширование собранных сеток расписания.
type CachePort interface {
	GetDayGrid(ctx context.Context, doctorID string, day time.Time) (*domain.DayGrid, bool)
	StoreDayGrid(ctx context.Context, grid *domain.DayGrid)

	GetWeekGrid(ctx context.Context, doctorID string, weekStart time.Time) (*domain.WeekGrid, bool)
	StoreWeekGrid(ctx context.Context, grid *domain.WeekGrid)

	// Инвалидация всех сеток одного врача
	InvalidateDoctor(ctx context.Context, doctorID string)
	InvalidateAll(ctx context.Context)
}
