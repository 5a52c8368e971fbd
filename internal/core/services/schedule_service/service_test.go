package schedule_service

import (
	"context"
	"time"

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

type stubRoster struct {
	doctors      []domain.Doctor
	patients     []domain.Patient
	appointments []domain.Appointment
}

func (r *stubRoster) GetDoctorByID(ctx context.Context, id string) (*domain.Doctor, error) {
	for _, doctor := range r.doctors {
		if doctor.ID == id {
			d := doctor
			return &d, nil
		}
	}
	return nil, nil
}

func (r *stubRoster) GetPatientByID(ctx context.Context, id string) (*domain.Patient, error) {
	for _, patient := range r.patients {
		if patient.ID == id {
			p := patient
			return &p, nil
		}
	}
	return nil, nil
}

func (r *stubRoster) GetAllDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return r.doctors, nil
}

func (r *stubRoster) GetAllAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return r.appointments, nil
}

type stubCache struct {
	dayGrids          map[string]*domain.DayGrid
	weekGrids         map[string]*domain.WeekGrid
	invalidatedDoctor string
	invalidatedAll    bool
}

func newStubCache() *stubCache {
	return &stubCache{
		dayGrids:  make(map[string]*domain.DayGrid),
		weekGrids: make(map[string]*domain.WeekGrid),
	}
}

func cacheKey(doctorID string, date time.Time) string {
	return doctorID + "|" + date.Format("2006-01-02")
}

func (c *stubCache) GetDayGrid(ctx context.Context, doctorID string, day time.Time) (*domain.DayGrid, bool) {
	grid, exists := c.dayGrids[cacheKey(doctorID, day)]
	return grid, exists
}

func (c *stubCache) StoreDayGrid(ctx context.Context, grid *domain.DayGrid) {
	c.dayGrids[cacheKey(grid.DoctorID, grid.Date.Date)] = grid
}

func (c *stubCache) GetWeekGrid(ctx context.Context, doctorID string, weekStart time.Time) (*domain.WeekGrid, bool) {
	grid, exists := c.weekGrids[cacheKey(doctorID, weekStart)]
	return grid, exists
}

func (c *stubCache) StoreWeekGrid(ctx context.Context, grid *domain.WeekGrid) {
	c.weekGrids[cacheKey(grid.DoctorID, grid.WeekStart.Date)] = grid
}

func (c *stubCache) InvalidateDoctor(ctx context.Context, doctorID string) {
	c.invalidatedDoctor = doctorID
}

func (c *stubCache) InvalidateAll(ctx context.Context) {
	c.invalidatedAll = true
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Calendar.DayStartHour = 8
	cfg.Calendar.DayEndHour = 18
	cfg.Calendar.DayStepMinutes = 30
	cfg.Calendar.WeekStepMinutes = 60
	return cfg
}

func dt(year int, month time.Month, day, hour, minute int) json_types.DateTime {
	return json_types.DateTime{
		Date: time.Date(year, month, day, hour, minute, 0, 0, time.UTC),
	}
}

func testRoster() *stubRoster {
	return &stubRoster{
		doctors: []domain.Doctor{
			{ID: "doc-1", Name: "Sarah Chen", Specialty: "Cardiology"},
			{ID: "doc-2", Name: "Michael Rodriguez", Specialty: "Pediatrics"},
		},
		patients: []domain.Patient{
			{ID: "pat-1", Name: "John Smith"},
			{ID: "pat-2", Name: "Maria Garcia"},
		},
		appointments: []domain.Appointment{
			{
				ID:        "app-1",
				DoctorID:  "doc-1",
				PatientID: "pat-1",
				Type:      domain.AppointmentTypeCheckup,
				StartTime: dt(2024, time.March, 4, 9, 0),
				EndTime:   dt(2024, time.March, 4, 9, 30),
			},
			{
				ID:        "app-2",
				DoctorID:  "doc-1",
				PatientID: "pat-2",
				Type:      domain.AppointmentTypeConsultation,
				StartTime: dt(2024, time.March, 4, 10, 0),
				EndTime:   dt(2024, time.March, 4, 11, 0),
			},
			{
				ID:        "app-3",
				DoctorID:  "doc-2",
				PatientID: "pat-1",
				Type:      domain.AppointmentTypeCheckup,
				StartTime: dt(2024, time.March, 4, 9, 0),
				EndTime:   dt(2024, time.March, 4, 9, 30),
			},
		},
	}
}

func newTestService(roster *stubRoster) *ScheduleService {
	return NewScheduleService(roster, nil, testConfig(), nopLogger{})
}
