package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CenterID == uuid.Nil {
		return fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if len(req.Email) > domain.MaxEmailLength || !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Scheduled.IsZero() {
		return fmt.Errorf("%w: scheduled is required", ErrInvalidInput)
	}

	return nil
}

// validateSchedule проверяет запрошенный момент относительно текущего
// времени и рабочих часов. Порядок проверок фиксирован: прошлое ->
// рабочие часы; доступность слота проверяется позже, внутри транзакции.
func validateSchedule(scheduled, now time.Time) error {
	// Момент должен быть строго в будущем
	if !scheduled.After(now) {
		return ErrPastBooking
	}

	hour := scheduled.UTC().Hour()
	if hour < domain.OpenHour || hour >= domain.CloseHour {
		return ErrOutOfHours
	}

	return nil
}

// slotAvailable проверяет, что запрошенный момент точно присутствует во
// множестве доступных слотов, пересчитанном по свежему чтению бронирований:
//   - начало лежит на 30-минутной сетке рабочего дня,
//   - интервал целиком помещается до закрытия,
//   - интервал не пересекается ни с одним активным бронированием.
//
// Клиентскому списку слотов не доверяем никогда.
func slotAvailable(scheduled time.Time, durationMinutes int, bookings []*domain.Booking) bool {
	m := timeutil.MinuteOfDay(scheduled)

	if scheduled.UTC().Second() != 0 || scheduled.UTC().Nanosecond() != 0 {
		return false
	}
	if m < domain.OpenMinute || m >= domain.CloseMinute {
		return false
	}
	if (m-domain.OpenMinute)%domain.SlotStepMinutes != 0 {
		return false
	}
	if m+durationMinutes > domain.CloseMinute {
		return false
	}

	candidate := domain.NewInterval(scheduled, durationMinutes)
	for _, b := range bookings {
		if candidate.Overlaps(b.Interval()) {
			return false
		}
	}

	return true
}
