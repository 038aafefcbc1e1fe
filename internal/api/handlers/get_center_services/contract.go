package get_center_services

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/Glow-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetCenterServices(ctx context.Context, centerID uuid.UUID) ([]*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
