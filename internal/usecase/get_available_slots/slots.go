package get_available_slots

import (
	"time"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

// generateSlots генерирует доступные слоты на дату для услуги
// длительностью durationMinutes при существующих бронированиях booked.
//
// Кандидаты идут по сетке 30 минут от открытия (09:00, 09:30, ...).
// Кандидат попадает в результат, если:
//   - его начало строго раньше закрытия,
//   - он целиком помещается до закрытия (start + D <= 18:00),
//   - интервал [start, start+D) не пересекается ни с одним бронированием.
//
// Длительность не обязана быть кратной шагу: начала остаются на сетке,
// двигается только конец занимаемого интервала.
//
// Результат отсортирован по возрастанию и считается заново при каждом
// вызове; никакого кеширования здесь нет.
func generateSlots(date time.Time, durationMinutes int, booked []domain.Interval) []time.Time {
	slots := make([]time.Time, 0, (domain.CloseMinute-domain.OpenMinute)/domain.SlotStepMinutes)

	for m := domain.OpenMinute; m < domain.CloseMinute; m += domain.SlotStepMinutes {
		// Слот, выбегающий за закрытие, исключается
		if m+durationMinutes > domain.CloseMinute {
			break
		}

		start := timeutil.AtMinute(date, m)
		candidate := domain.NewInterval(start, durationMinutes)

		if overlapsAny(candidate, booked) {
			continue
		}

		slots = append(slots, start)
	}

	return slots
}

func overlapsAny(candidate domain.Interval, booked []domain.Interval) bool {
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// bookedIntervals собирает занятые интервалы из бронирований
func bookedIntervals(bookings []*domain.Booking) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, b.Interval())
	}
	return intervals
}
