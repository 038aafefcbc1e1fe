package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/Glow-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Glow-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

const (
	msgInvalidCenterID  = "Invalid center ID."
	msgMissingServiceID = "Service ID is required."
	msgInvalidServiceID = "Invalid service ID."
	msgMissingDate      = "Date is required."
	msgInvalidDate      = "Invalid date format, expected YYYY-MM-DD."
	msgServiceNotFound  = "Service not found or has no duration set."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{centerId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	centerID, err := uuid.Parse(vars["centerId"])
	if err != nil {
		h.logger.Warn("GET /centers/{id}/available-slots - Invalid center ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /centers/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		h.logger.Warn("GET /centers/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /centers/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /centers/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(centerID, serviceID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /centers/{id}/available-slots - Service not found: center_id=%s, service_id=%s",
				centerID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /centers/{id}/available-slots - Failed to get slots: center_id=%s, service_id=%s, error=%v",
				centerID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id}/available-slots - Slots retrieved successfully: center_id=%s, service_id=%s, slots_count=%d",
		centerID, serviceID, len(result.Slots))
	handlers.RespondData(w, http.StatusOK, FromUseCaseResponse(result))
}
