package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Glow-BookingService/internal/domain"
)

// CenterRepository интерфейс репозитория центров
type CenterRepository interface {
	List(ctx context.Context) ([]*domain.Center, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Center, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByCenter(ctx context.Context, centerID uuid.UUID) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
