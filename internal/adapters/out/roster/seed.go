package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/config"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/json_types"
)

// Seed - стартовый набор данных реестра. Схема совпадает с JSON-представлением
// доменных сущностей, поэтому файл сида разбирается теми же кодеками.
type Seed struct {
	Doctors      []domain.Doctor      `json:"doctors"`
	Patients     []domain.Patient     `json:"patients"`
	Appointments []domain.Appointment `json:"appointments"`
}

// LoadSeedFile читает сид из JSON-файла.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster.seed.read_failed: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("roster.seed.decode_failed: %w", err)
	}

	return &seed, nil
}

func at(year int, month time.Month, day, hour, minute int) json_types.DateTime {
	return json_types.DateTime{
		Date: time.Date(year, month, day, hour, minute, 0, 0, config.TimeZone),
	}
}

// DefaultSeed - встроенный реестр клиники, используется если файл сида
// не указан в конфиге.
func DefaultSeed() *Seed {
	return &Seed{
		Doctors: []domain.Doctor{
			{ID: "doc-1", Name: "Sarah Chen", Specialty: "Cardiology"},
			{ID: "doc-2", Name: "Michael Rodriguez", Specialty: "Pediatrics"},
			{ID: "doc-3", Name: "Emily Watson", Specialty: "General Practice"},
		},
		Patients: []domain.Patient{
			{ID: "pat-1", Name: "John Smith"},
			{ID: "pat-2", Name: "Maria Garcia"},
			{ID: "pat-3", Name: "David Johnson"},
			{ID: "pat-4", Name: "Anna Lee"},
			{ID: "pat-5", Name: "Robert Brown"},
		},
		Appointments: []domain.Appointment{
			{
				ID:        "app-1",
				DoctorID:  "doc-1",
				PatientID: "pat-1",
				Type:      domain.AppointmentTypeCheckup,
				StartTime: at(2024, time.March, 4, 9, 0),
				EndTime:   at(2024, time.March, 4, 9, 30),
				Notes:     "Annual checkup",
			},
			{
				ID:        "app-2",
				DoctorID:  "doc-1",
				PatientID: "pat-2",
				Type:      domain.AppointmentTypeConsultation,
				StartTime: at(2024, time.March, 4, 10, 0),
				EndTime:   at(2024, time.March, 4, 11, 0),
			},
			{
				ID:        "app-3",
				DoctorID:  "doc-1",
				PatientID: "pat-3",
				Type:      domain.AppointmentTypeSurgery,
				StartTime: at(2024, time.March, 5, 13, 0),
				EndTime:   at(2024, time.March, 5, 16, 0),
				Notes:     "Bypass surgery, OR-2",
			},
			{
				ID:        "app-4",
				DoctorID:  "doc-2",
				PatientID: "pat-4",
				Type:      domain.AppointmentTypeCheckup,
				StartTime: at(2024, time.March, 4, 8, 30),
				EndTime:   at(2024, time.March, 4, 9, 0),
			},
			{
				ID:        "app-5",
				DoctorID:  "doc-2",
				PatientID: "pat-5",
				Type:      domain.AppointmentTypeFollowUp,
				StartTime: at(2024, time.March, 6, 15, 30),
				EndTime:   at(2024, time.March, 6, 16, 0),
				Notes:     "Post-op follow-up",
			},
			{
				ID:        "app-6",
				DoctorID:  "doc-3",
				PatientID: "pat-1",
				Type:      domain.AppointmentTypeConsultation,
				StartTime: at(2024, time.March, 7, 11, 30),
				EndTime:   at(2024, time.March, 7, 12, 0),
			},
			{
				ID:        "app-7",
				DoctorID:  "doc-3",
				PatientID: "pat-2",
				Type:      domain.AppointmentTypeCheckup,
				StartTime: at(2024, time.March, 8, 9, 30),
				EndTime:   at(2024, time.March, 8, 10, 0),
			},
		},
	}
}
