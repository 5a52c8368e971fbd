package schedule_service

import "github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"

type AppointmentSlice []domain.Appointment

// quickSort - сортировка записей по времени начала
func (s AppointmentSlice) quickSort() AppointmentSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	// Разделяем слайс на три части
	less := AppointmentSlice{}
	equal := AppointmentSlice{}
	greater := AppointmentSlice{}

	for _, appointment := range s {
		if appointment.StartTime.Date.Before(pivot.StartTime.Date) {
			less = append(less, appointment)
		} else if appointment.StartTime.Date.Equal(pivot.StartTime.Date) {
			equal = append(equal, appointment)
		} else {
			greater = append(greater, appointment)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}
