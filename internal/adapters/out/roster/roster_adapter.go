package roster

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/out"
)

// RosterAdapter - in-memory реализация RosterPort поверх статичного набора
// данных, загруженного при старте процесса. После конструктора данные
// не изменяются, поэтому блокировки не нужны.
type RosterAdapter struct {
	doctors      map[string]domain.Doctor
	doctorOrder  []string
	patients     map[string]domain.Patient
	appointments []domain.Appointment
	logger       out.LoggerPort
}

func NewRosterAdapter(seed *Seed, logger out.LoggerPort) *RosterAdapter {
	adapter := &RosterAdapter{
		doctors:      make(map[string]domain.Doctor),
		doctorOrder:  make([]string, 0, len(seed.Doctors)),
		patients:     make(map[string]domain.Patient),
		appointments: make([]domain.Appointment, 0, len(seed.Appointments)),
		logger:       logger.WithModule("RosterAdapter"),
	}

	for _, doctor := range seed.Doctors {
		if _, exists := adapter.doctors[doctor.ID]; exists {
			adapter.logger.Warn("roster.seed.duplicate_doctor", out.LogFields{
				"doctorId": doctor.ID,
			})
			continue
		}
		adapter.doctors[doctor.ID] = doctor
		adapter.doctorOrder = append(adapter.doctorOrder, doctor.ID)
	}

	for _, patient := range seed.Patients {
		adapter.patients[patient.ID] = patient
	}

	for _, appointment := range seed.Appointments {
		// Записям без идентификатора выдаем его при загрузке
		if appointment.ID == "" {
			appointment.ID = uuid.NewString()
		}
		adapter.appointments = append(adapter.appointments, appointment)
	}

	adapter.logger.Info("roster.seed.loaded", out.LogFields{
		"doctorsCount":      len(adapter.doctorOrder),
		"patientsCount":     len(adapter.patients),
		"appointmentsCount": len(adapter.appointments),
	})

	return adapter
}

func (a *RosterAdapter) GetDoctorByID(ctx context.Context, id string) (*domain.Doctor, error) {
	doctor, exists := a.doctors[id]
	if !exists {
		return nil, nil
	}
	return &doctor, nil
}

func (a *RosterAdapter) GetPatientByID(ctx context.Context, id string) (*domain.Patient, error) {
	patient, exists := a.patients[id]
	if !exists {
		return nil, nil
	}
	return &patient, nil
}

// GetAllDoctors возвращает врачей в порядке добавления в реестр.
func (a *RosterAdapter) GetAllDoctors(ctx context.Context) ([]domain.Doctor, error) {
	doctors := make([]domain.Doctor, 0, len(a.doctorOrder))
	for _, id := range a.doctorOrder {
		doctors = append(doctors, a.doctors[id])
	}
	return doctors, nil
}

func (a *RosterAdapter) GetAllAppointments(ctx context.Context) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, len(a.appointments))
	copy(appointments, a.appointments)
	return appointments, nil
}
