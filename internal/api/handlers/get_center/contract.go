package get_center

import (
	"context"

	"github.com/m04kA/Glow-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetCenterBySlug(ctx context.Context, slug string) (*models.CenterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
