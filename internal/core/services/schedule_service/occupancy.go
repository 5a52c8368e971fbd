package schedule_service

import (
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-viewer/internal/utils"
)

// SlotOccupants возвращает записи, занимающие слот по правилу полуоткрытых
// интервалов: start < slot.End и end > slot.Start. Запись, начинающаяся ровно
// в конце слота или заканчивающаяся ровно в его начале, слот не занимает -
// на границах слотов двойного счета нет.
func SlotOccupants(slot domain.TimeSlot, appointments []domain.Appointment) []domain.Appointment {
	occupants := make([]domain.Appointment, 0)

	for _, appointment := range appointments {
		if !appointment.HasValidInterval() {
			continue
		}

		startOverlapping := appointment.StartTime.Date.Before(slot.End)
		endOverlapping := appointment.EndTime.Date.After(slot.Start)
		if startOverlapping && endOverlapping {
			occupants = append(occupants, appointment)
		}
	}

	return occupants
}

// SlotOccupantsOnDay - занятость слота недельной сетки. Кроме пересечения
// интервалов требуется совпадение календарного дня начала записи с указанным
// днем: слоты одного часа повторяются для каждого из 7 дней недели.
func SlotOccupantsOnDay(slot domain.TimeSlot, appointments []domain.Appointment, day time.Time) []domain.Appointment {
	sameDay := make([]domain.Appointment, 0)
	for _, appointment := range appointments {
		start := appointment.StartTime.Date.In(day.Location())
		if utils.SameCalendarDay(start, day) {
			sameDay = append(sameDay, appointment)
		}
	}

	return SlotOccupants(slot, sameDay)
}
