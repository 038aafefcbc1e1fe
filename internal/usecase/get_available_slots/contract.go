package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Glow-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByCenterAndDate получает все бронирования центра на конкретную дату
	GetByCenterAndDate(ctx context.Context, centerID uuid.UUID, date time.Time) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetDuration возвращает длительность услуги в минутах
	GetDuration(ctx context.Context, serviceID uuid.UUID) (int, error)
}

// SlotCache короткоживущий кеш ответов (не авторитетный)
type SlotCache interface {
	Get(ctx context.Context, centerID uuid.UUID, date time.Time, serviceID uuid.UUID) ([]time.Time, bool, error)
	Set(ctx context.Context, centerID uuid.UUID, date time.Time, serviceID uuid.UUID, slots []time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
