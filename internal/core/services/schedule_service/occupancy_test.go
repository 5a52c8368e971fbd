package schedule_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
)

func slotAt(hour, minute, durationMinutes int) domain.TimeSlot {
	start := time.Date(2024, time.March, 4, hour, minute, 0, 0, time.UTC)
	return domain.TimeSlot{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func TestSlotOccupants_Overlap(t *testing.T) {
	slot := slotAt(9, 0, 30)
	appointments := []domain.Appointment{
		{ID: "inside", StartTime: dt(2024, time.March, 4, 9, 0), EndTime: dt(2024, time.March, 4, 9, 30)},
		{ID: "spanning", StartTime: dt(2024, time.March, 4, 8, 45), EndTime: dt(2024, time.March, 4, 9, 45)},
		{ID: "before", StartTime: dt(2024, time.March, 4, 8, 0), EndTime: dt(2024, time.March, 4, 8, 30)},
		{ID: "after", StartTime: dt(2024, time.March, 4, 10, 0), EndTime: dt(2024, time.March, 4, 10, 30)},
	}

	occupants := SlotOccupants(slot, appointments)
	require.Len(t, occupants, 2)
	require.Equal(t, "inside", occupants[0].ID)
	require.Equal(t, "spanning", occupants[1].ID)
}

func TestSlotOccupants_BoundaryLaw(t *testing.T) {
	slot := slotAt(9, 0, 30)
	appointments := []domain.Appointment{
		// Заканчивается ровно в начале слота - не занимает
		{ID: "ends-at-start", StartTime: dt(2024, time.March, 4, 8, 30), EndTime: dt(2024, time.March, 4, 9, 0)},
		// Начинается ровно в конце слота - не занимает
		{ID: "starts-at-end", StartTime: dt(2024, time.March, 4, 9, 30), EndTime: dt(2024, time.March, 4, 10, 0)},
	}

	occupants := SlotOccupants(slot, appointments)
	require.Empty(t, occupants)
}

func TestSlotOccupants_InvalidIntervalNeverOccupies(t *testing.T) {
	slot := slotAt(9, 0, 30)
	appointments := []domain.Appointment{
		// Перевернутый интервал формально пересекает слот, но невалиден
		{ID: "reversed", StartTime: dt(2024, time.March, 4, 9, 15), EndTime: dt(2024, time.March, 4, 9, 10)},
	}

	occupants := SlotOccupants(slot, appointments)
	require.Empty(t, occupants)
}

func TestSlotOccupantsOnDay_RequiresSameCalendarDay(t *testing.T) {
	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	appointments := []domain.Appointment{
		{ID: "monday", StartTime: dt(2024, time.March, 4, 9, 0), EndTime: dt(2024, time.March, 4, 9, 30)},
		{ID: "tuesday", StartTime: dt(2024, time.March, 5, 9, 0), EndTime: dt(2024, time.March, 5, 9, 30)},
	}

	mondaySlot := GenerateWeekDaySlots(monday, 9, 10, 60)[0]
	occupants := SlotOccupantsOnDay(mondaySlot, appointments, monday)
	require.Len(t, occupants, 1)
	require.Equal(t, "monday", occupants[0].ID)

	tuesdaySlot := GenerateWeekDaySlots(tuesday, 9, 10, 60)[0]
	occupants = SlotOccupantsOnDay(tuesdaySlot, appointments, tuesday)
	require.Len(t, occupants, 1)
	require.Equal(t, "tuesday", occupants[0].ID)
}
