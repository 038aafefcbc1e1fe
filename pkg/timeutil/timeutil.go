// Package timeutil работает с временем в политике псевдо-UTC:
// все моменты - это локальное рабочее время центров, которое хранится
// и передается как UTC с литеральным суффиксом Z. Зона сервера нигде
// не участвует, поэтому генерация слотов не зависит от переводов часов.
package timeutil

import (
	"time"

	"github.com/m04kA/Glow-BookingService/internal/domain"
)

// ParseWire парсит временную метку формата YYYY-MM-DDTHH:MM:SS.000Z
func ParseWire(s string) (time.Time, error) {
	t, err := time.Parse(domain.WireTimeFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatWire форматирует момент в проводной формат
func FormatWire(t time.Time) string {
	return t.UTC().Format(domain.WireTimeFormat)
}

// ParseDate парсит дату формата YYYY-MM-DD (полночь псевдо-UTC)
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// StartOfDay обнуляет время, оставляя только дату
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AtMinute возвращает момент дня date со смещением minuteOfDay минут от полуночи
func AtMinute(date time.Time, minuteOfDay int) time.Time {
	return StartOfDay(date).Add(time.Duration(minuteOfDay) * time.Minute)
}

// MinuteOfDay возвращает число минут от полуночи для момента t.
// Абсолютные моменты и минуты-от-полуночи - взаимозаменяемые представления
// одного и того же полуоткрытого интервала.
func MinuteOfDay(t time.Time) int {
	tt := t.UTC()
	return tt.Hour()*60 + tt.Minute()
}

// SameDay проверяет, что два момента относятся к одной дате
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.UTC().Date()
	yb, mb, db := b.UTC().Date()
	return ya == yb && ma == mb && da == db
}
