package utils

import (
	"fmt"
	"time"
)

// DayLayout es el formato de fecha a nivel de día usado en toda la aplicación
const DayLayout = "2006-01-02"

// MonthLayout es el formato mes/año de los parámetros de calendario
const MonthLayout = "01/2006"

// ParseDay interpreta una fecha a granularidad de día. Acepta "2006-01-02"
// y también timestamps ISO completos, de los que solo conserva el día.
func ParseDay(s string) (time.Time, error) {
	if len(s) > len(DayLayout) {
		s = s[:len(DayLayout)]
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}

// TruncateDay descarta el componente horario de un instante
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDay formatea una fecha como "2006-01-02"
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// DayRange genera la secuencia de días consecutivos a partir de start
func DayRange(start time.Time, days int) []time.Time {
	start = TruncateDay(start)
	out := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// MonthDays genera todos los días del mes al que pertenece t
func MonthDays(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DayRange(first, last.Day())
}
