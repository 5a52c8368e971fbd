package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/clinic-schedule-viewer/internal/config"
)

// SameCalendarDay сравнивает календарные дни двух моментов: год, месяц и число
// в локальном времени. Время суток и таймзона момента не участвуют в сравнении.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfDay возвращает новую дату с временем 00:00, таймзона остается прежней.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek возвращает начало недели (понедельник, 00:00) для переданной даты.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday считает воскресенье нулем, сдвигаем к понедельнику
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует
// парсить дату со временем, но без таймзоны, и затем дату без времени.
// Для строк без таймзоны используется таймзона из конфига.
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		location := config.TimeZone
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}
