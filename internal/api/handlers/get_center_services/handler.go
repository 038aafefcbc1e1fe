package get_center_services

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Glow-BookingService/internal/api/handlers"
	"github.com/m04kA/Glow-BookingService/internal/service/catalog"
)

const msgInvalidCenterID = "Invalid center ID."

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

// Handle GET /api/v1/centers/{centerId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centerID, err := uuid.Parse(mux.Vars(r)["centerId"])
	if err != nil {
		h.logger.Warn("GET /centers/{id}/services - Invalid center ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	services, err := h.service.GetCenterServices(r.Context(), centerID)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("GET /centers/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCenterID)
			return
		}
		h.logger.Error("GET /centers/{id}/services - Failed to get services: center_id=%s, error=%v", centerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /centers/{id}/services - Services retrieved successfully: center_id=%s, count=%d",
		centerID, len(services))
	handlers.RespondData(w, http.StatusOK, services)
}
