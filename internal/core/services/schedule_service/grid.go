package schedule_service

import (
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
)

// GenerateDaySlots генерирует непрерывные полуоткрытые слоты для одного дня.
// Слоты привязаны к дате переданного дня: момент начала строится заново
// из (день, час, минута), общий "сейчас" нигде не мутируется.
// Если шаг не делит окно нацело, последний слот укорачивается до конца окна.
func GenerateDaySlots(day time.Time, startHour, endHour, stepMinutes int) []domain.TimeSlot {
	return generateSlots(day, startHour, endHour, stepMinutes, dayLabel)
}

// GenerateWeekDaySlots генерирует слоты одного дня недельной сетки.
// Отличается только форматом подписи: "08:00 - 09:00".
func GenerateWeekDaySlots(day time.Time, startHour, endHour, stepMinutes int) []domain.TimeSlot {
	return generateSlots(day, startHour, endHour, stepMinutes, weekLabel)
}

// GenerateWeekDays возвращает 7 последовательных календарных дней начиная
// с weekStart, время каждого - 00:00 в таймзоне weekStart.
func GenerateWeekDays(weekStart time.Time) []time.Time {
	days := make([]time.Time, 0, 7)
	start := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

func generateSlots(day time.Time, startHour, endHour, stepMinutes int, label func(start, end time.Time) string) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	step := time.Duration(stepMinutes) * time.Minute
	cursor := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
	bound := time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, day.Location())

	for cursor.Before(bound) {
		slotEnd := cursor.Add(step)
		if slotEnd.After(bound) {
			slotEnd = bound
		}

		slots = append(slots, domain.TimeSlot{
			Start: cursor,
			End:   slotEnd,
			Label: label(cursor, slotEnd),
		})
		cursor = slotEnd
	}

	return slots
}

func dayLabel(start, _ time.Time) string {
	return start.Format("3:04 PM")
}

func weekLabel(start, end time.Time) string {
	return start.Format("15:04") + " - " + end.Format("15:04")
}
