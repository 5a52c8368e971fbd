package domain

import (
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/json_types"
)

// DayGrid - дневное представление расписания врача.
// Doctor == nil означает, что врач не найден в реестре; пустые слоты
// означают отсутствие записей. Эти два состояния не смешиваются.
type DayGrid struct {
	DoctorID     string                 `json:"doctorId"`
	Doctor       *Doctor                `json:"doctor"`
	Date         json_types.Date        `json:"date"`
	Slots        []SlotOccupancy        `json:"slots"`
	Appointments []PopulatedAppointment `json:"appointments"`
}

type WeekDayGrid struct {
	Date  json_types.Date `json:"date"`
	Slots []SlotOccupancy `json:"slots"`
}

// WeekGrid - недельное представление: одинаковое внутридневное окно,
// повторенное для 7 последовательных дней начиная с WeekStart.
type WeekGrid struct {
	DoctorID  string          `json:"doctorId"`
	Doctor    *Doctor         `json:"doctor"`
	WeekStart json_types.Date `json:"weekStart"`
	Days      []WeekDayGrid   `json:"days"`
}
