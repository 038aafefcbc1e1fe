package list_centers

import (
	"net/http"

	"github.com/m04kA/Glow-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centers, err := h.service.ListCenters(r.Context())
	if err != nil {
		h.logger.Error("GET /centers - Failed to list centers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /centers - Centers retrieved successfully: count=%d", len(centers))
	handlers.RespondData(w, http.StatusOK, centers)
}
