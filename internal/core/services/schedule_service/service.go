package schedule_service

import (
	"context"

	"github.com/suchimauz/clinic-schedule-viewer/internal/config"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
)

// ScheduleService - ядро движка расписания: выборки записей, генерация сетки
// и разрешение занятости слотов. Все операции только читают реестр.
type ScheduleService struct {
	rosterPort out.RosterPort
	cachePort  out.CachePort
	logger     out.LoggerPort
	cfg        *config.Config
}

func NewScheduleService(
	rosterPort out.RosterPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *ScheduleService {
	return &ScheduleService{
		rosterPort: rosterPort,
		cachePort:  cachePort,
		cfg:        cfg,
		logger:     logger.WithModule("ScheduleService"),
	}
}

func (s *ScheduleService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}

func (s *ScheduleService) InvalidateDoctorSchedule(ctx context.Context, doctorID string) {
	if s.cachePort == nil {
		return
	}

	s.logger.Info("schedule.cache.invalidate_doctor", out.LogFields{
		"doctorId": doctorID,
	})
	s.cachePort.InvalidateDoctor(ctx, doctorID)
}

func (s *ScheduleService) InvalidateAllSchedules(ctx context.Context) {
	if s.cachePort == nil {
		return
	}

	s.logger.Info("schedule.cache.invalidate_all", out.LogFields{})
	s.cachePort.InvalidateAll(ctx)
}
