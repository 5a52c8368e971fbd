package in

import (
	"context"
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
)

type ScheduleViewerUseCase interface {
	// Дневная сетка расписания врача
	DayView(ctx context.Context, doctorID string, date time.Time) (*domain.DayGrid, error)

	// Недельная сетка: 7 дней начиная с weekStart
	WeekView(ctx context.Context, doctorID string, weekStart time.Time) (*domain.WeekGrid, error)

	// Список врачей для селектора
	Doctors(ctx context.Context) ([]domain.Doctor, error)

	// Инвалидация кэшированных сеток при изменении записей на прием
	InvalidateDoctorSchedule(ctx context.Context, doctorID string)
	InvalidateAllSchedules(ctx context.Context)
}
