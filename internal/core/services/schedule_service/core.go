package schedule_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/json_types"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
	"github.com/suchimauz/clinic-schedule-viewer/internal/utils"
)

// DayView собирает дневную сетку: записи врача за календарный день,
// слоты рабочего окна и занятость каждого слота.
func (s *ScheduleService) DayView(ctx context.Context, doctorID string, date time.Time) (*domain.DayGrid, error) {
	day := utils.StartOfDay(date)

	s.logger.Info("schedule.day_view.started", out.LogFields{
		"doctorId": doctorID,
		"date":     day.Format("2006-01-02"),
	})

	if s.cacheEnabled() {
		if grid, exists := s.cachePort.GetDayGrid(ctx, doctorID, day); exists {
			s.logger.Debug("schedule.day_view.cache.hit", out.LogFields{
				"doctorId": doctorID,
				"date":     day.Format("2006-01-02"),
			})
			return grid, nil
		}
	}

	doctor, err := s.rosterPort.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("schedule.day_view.doctor.fetch_failed: %w", err)
	}

	appointments, err := s.AppointmentsByDoctorAndDay(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	slots := GenerateDaySlots(day,
		s.cfg.Calendar.DayStartHour,
		s.cfg.Calendar.DayEndHour,
		s.cfg.Calendar.DayStepMinutes,
	)

	occupancies := make([]domain.SlotOccupancy, 0, len(slots))
	for _, slot := range slots {
		occupancies = append(occupancies, domain.SlotOccupancy{
			Slot:         slot,
			Appointments: SlotOccupants(slot, appointments),
		})
	}

	populated, err := s.populateForDisplay(ctx, appointments)
	if err != nil {
		return nil, err
	}

	grid := &domain.DayGrid{
		DoctorID:     doctorID,
		Doctor:       doctor,
		Date:         json_types.Date{Date: day},
		Slots:        occupancies,
		Appointments: populated,
	}

	if s.cacheEnabled() {
		s.cachePort.StoreDayGrid(ctx, grid)
	}

	s.logger.Debug("schedule.day_view.finished", out.LogFields{
		"doctorId":          doctorID,
		"slotsCount":        len(occupancies),
		"appointmentsCount": len(appointments),
	})

	return grid, nil
}

// WeekView собирает недельную сетку: записи врача, целиком попавшие в неделю,
// и одинаковое внутридневное окно слотов для каждого из 7 дней.
// Слоты каждого дня привязаны к его собственной дате.
func (s *ScheduleService) WeekView(ctx context.Context, doctorID string, weekStart time.Time) (*domain.WeekGrid, error) {
	start := utils.StartOfDay(weekStart)
	end := start.AddDate(0, 0, 7)

	s.logger.Info("schedule.week_view.started", out.LogFields{
		"doctorId":  doctorID,
		"weekStart": start.Format("2006-01-02"),
	})

	if s.cacheEnabled() {
		if grid, exists := s.cachePort.GetWeekGrid(ctx, doctorID, start); exists {
			s.logger.Debug("schedule.week_view.cache.hit", out.LogFields{
				"doctorId":  doctorID,
				"weekStart": start.Format("2006-01-02"),
			})
			return grid, nil
		}
	}

	doctor, err := s.rosterPort.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("schedule.week_view.doctor.fetch_failed: %w", err)
	}

	appointments, err := s.AppointmentsByDoctorAndRange(ctx, doctorID, start, end)
	if err != nil {
		return nil, err
	}

	days := make([]domain.WeekDayGrid, 0, 7)
	for _, day := range GenerateWeekDays(start) {
		slots := GenerateWeekDaySlots(day,
			s.cfg.Calendar.DayStartHour,
			s.cfg.Calendar.DayEndHour,
			s.cfg.Calendar.WeekStepMinutes,
		)

		occupancies := make([]domain.SlotOccupancy, 0, len(slots))
		for _, slot := range slots {
			occupancies = append(occupancies, domain.SlotOccupancy{
				Slot:         slot,
				Appointments: SlotOccupantsOnDay(slot, appointments, day),
			})
		}

		days = append(days, domain.WeekDayGrid{
			Date:  json_types.Date{Date: day},
			Slots: occupancies,
		})
	}

	grid := &domain.WeekGrid{
		DoctorID:  doctorID,
		Doctor:    doctor,
		WeekStart: json_types.Date{Date: start},
		Days:      days,
	}

	if s.cacheEnabled() {
		s.cachePort.StoreWeekGrid(ctx, grid)
	}

	s.logger.Debug("schedule.week_view.finished", out.LogFields{
		"doctorId":          doctorID,
		"appointmentsCount": len(appointments),
	})

	return grid, nil
}

// Doctors возвращает всех врачей в порядке реестра.
func (s *ScheduleService) Doctors(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := s.rosterPort.GetAllDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule.doctors.fetch_failed: %w", err)
	}
	return doctors, nil
}

// populateForDisplay обогащает записи для отображения, сортируя их по времени
// начала. Записи с неразрешимыми ссылками из списка пропускаются, но из
// занятости слотов не исключаются: фильтрация выборок не зависит от успеха
// обогащения.
func (s *ScheduleService) populateForDisplay(ctx context.Context, appointments []domain.Appointment) ([]domain.PopulatedAppointment, error) {
	sorted := AppointmentSlice(appointments).quickSort()

	populated := make([]domain.PopulatedAppointment, 0, len(sorted))
	for _, appointment := range sorted {
		p, err := s.Populate(ctx, appointment)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		populated = append(populated, *p)
	}

	return populated, nil
}
