package domain

import (
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/json_types"
)

type AppointmentType string

const (
	AppointmentTypeCheckup      AppointmentType = "checkup"
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeSurgery      AppointmentType = "surgery"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
)

type Appointment struct {
	ID        string              `json:"id"`
	DoctorID  string              `json:"doctorId"`
	PatientID string              `json:"patientId"`
	Type      AppointmentType     `json:"type"`
	StartTime json_types.DateTime `json:"startTime"`
	EndTime   json_types.DateTime `json:"endTime"`
	Notes     string              `json:"notes,omitempty"`
}

// HasValidInterval проверяет инвариант интервала записи: начало строго раньше конца.
// Записи с нарушенным интервалом не попадают в выборки и в сетку.
func (a Appointment) HasValidInterval() bool {
	return a.StartTime.Date.Before(a.EndTime.Date)
}

// PopulatedAppointment - запись на прием, обогащенная данными врача и пациента.
// Вычисляется по требованию и никогда не хранится.
type PopulatedAppointment struct {
	Appointment
	Doctor  Doctor  `json:"doctor"`
	Patient Patient `json:"patient"`
}
