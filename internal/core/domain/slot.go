package domain

import (
	"time"
)

// TimeSlot - полуоткрытый интервал [Start, End) календарной сетки.
// Слоты одной сетки непрерывны: конец слота совпадает с началом следующего.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// SlotOccupancy - слот вместе с записями, которые его занимают.
// Порядок слотов в сетке сохраняется.
type SlotOccupancy struct {
	Slot         TimeSlot      `json:"slot"`
	Appointments []Appointment `json:"appointments"`
}
