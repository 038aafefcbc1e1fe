package list_centers

import (
	"context"

	"github.com/m04kA/Glow-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCenters(ctx context.Context) ([]*models.CenterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
