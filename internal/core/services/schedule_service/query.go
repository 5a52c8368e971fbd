package schedule_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
	"github.com/suchimauz/clinic-schedule-viewer/internal/utils"
)

// AppointmentsByDoctor возвращает все записи на прием врача в исходном порядке
// реестра. Записи с нарушенным интервалом (start >= end) отбрасываются.
func (s *ScheduleService) AppointmentsByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	appointments, err := s.rosterPort.GetAllAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule.query.appointments.fetch_failed: %w", err)
	}

	result := make([]domain.Appointment, 0)
	for _, appointment := range appointments {
		if appointment.DoctorID != doctorID {
			continue
		}
		if !appointment.HasValidInterval() {
			s.logger.Warn("schedule.query.invalid_interval", out.LogFields{
				"appointmentId": appointment.ID,
				"start":         appointment.StartTime.Date,
				"end":           appointment.EndTime.Date,
			})
			continue
		}
		result = append(result, appointment)
	}

	return result, nil
}

// AppointmentsByDoctorAndDay возвращает записи врача, которые начинаются
// в указанный календарный день. Сравнивается только StartTime: запись,
// начавшаяся в этот день и закончившаяся после полуночи, попадает в выборку,
// а начавшаяся накануне - нет.
func (s *ScheduleService) AppointmentsByDoctorAndDay(ctx context.Context, doctorID string, day time.Time) ([]domain.Appointment, error) {
	appointments, err := s.AppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Appointment, 0)
	for _, appointment := range appointments {
		start := appointment.StartTime.Date.In(day.Location())
		if utils.SameCalendarDay(start, day) {
			result = append(result, appointment)
		}
	}

	return result, nil
}

// AppointmentsByDoctorAndRange возвращает записи врача, целиком лежащие
// в [from, to]: start >= from и end <= to. Запись, пересекающая границу
// диапазона, в выборку не попадает. Это политика вхождения, а не пересечения,
// в отличие от занятости слотов.
func (s *ScheduleService) AppointmentsByDoctorAndRange(ctx context.Context, doctorID string, from, to time.Time) ([]domain.Appointment, error) {
	appointments, err := s.AppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Appointment, 0)
	for _, appointment := range appointments {
		start := appointment.StartTime.Date
		end := appointment.EndTime.Date
		if !start.Before(from) && !end.After(to) {
			result = append(result, appointment)
		}
	}

	return result, nil
}

// Populate обогащает запись данными врача и пациента из реестра.
// Если хотя бы одна из ссылок не разрешается, возвращается nil без ошибки:
// такую запись нельзя безопасно отобразить.
func (s *ScheduleService) Populate(ctx context.Context, appointment domain.Appointment) (*domain.PopulatedAppointment, error) {
	doctor, err := s.rosterPort.GetDoctorByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("schedule.populate.doctor.fetch_failed: %w", err)
	}

	patient, err := s.rosterPort.GetPatientByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, fmt.Errorf("schedule.populate.patient.fetch_failed: %w", err)
	}

	if doctor == nil || patient == nil {
		s.logger.Debug("schedule.populate.reference_miss", out.LogFields{
			"appointmentId": appointment.ID,
			"doctorFound":   doctor != nil,
			"patientFound":  patient != nil,
		})
		return nil, nil
	}

	return &domain.PopulatedAppointment{
		Appointment: appointment,
		Doctor:      *doctor,
		Patient:     *patient,
	}, nil
}
