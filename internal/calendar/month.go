// Package calendar holds the pure month arithmetic behind plan imports:
// weekday expansion, week-of-month indexing and document merging. Months are
// 1-based everywhere (January = 1), matching the "{year}-{month}" document key.
package calendar

import (
	"fmt"
	"time"
)

// WeekdayNames lists the Spanish weekday names, Monday first. Index i matches
// the normalized weekday index used throughout the package (Lunes = 0).
var WeekdayNames = [7]string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado", "Domingo"}

// MonthKey formats the persisted calendar document key for a month.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

// DaysInMonth returns the number of days in the month, using day 0 of the
// following month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// weekdayIndex normalizes time.Weekday so that Monday = 0 .. Sunday = 6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayDays maps each weekday name to the ordered day numbers of the month
// that fall on it. The seven lists partition 1..DaysInMonth exactly.
func WeekdayDays(year, month int) map[string][]int {
	result := make(map[string][]int, len(WeekdayNames))
	for _, name := range WeekdayNames {
		result[name] = nil
	}

	for day := 1; day <= DaysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		name := WeekdayNames[weekdayIndex(date)]
		result[name] = append(result[name], day)
	}

	return result
}

// WeekOfMonth returns the 1-based Monday-to-Sunday week a day falls into
// within its month. The first, possibly partial, week counts as week 1.
func WeekOfMonth(year, month, day int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := weekdayIndex(first)
	return (day-1+offset)/7 + 1
}
