package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2024, time.March, 4, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 4, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	require.True(t, SameCalendarDay(morning, evening))
	require.False(t, SameCalendarDay(evening, nextDay))

	// Сравниваются компоненты стенных часов, а не абсолютные моменты
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	lateUTC := time.Date(2024, time.March, 4, 23, 0, 0, 0, time.UTC)
	sameWallDay := time.Date(2024, time.March, 4, 1, 0, 0, 0, plus3)
	require.True(t, SameCalendarDay(lateUTC, sameWallDay))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2024, time.March, 4, 15, 45, 30, 0, loc)

	start := StartOfDay(moment)
	require.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, loc), start)
	require.Equal(t, loc, start.Location())
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		moment time.Time
	}{
		{"monday itself", time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2024, time.March, 6, 23, 59, 0, 0, time.UTC)},
		{"sunday", time.Date(2024, time.March, 10, 0, 1, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, monday, StartOfWeek(tc.moment))
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-04T09:00:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), parsed.UTC())

	parsed, err = ParseDate("2024-03-04T09:00:00")
	require.NoError(t, err)
	require.Equal(t, 9, parsed.Hour())

	parsed, err = ParseDate("2024-03-04")
	require.NoError(t, err)
	require.Equal(t, time.March, parsed.Month())
	require.Equal(t, 4, parsed.Day())

	_, err = ParseDate("not-a-date")
	require.Error(t, err)
}
