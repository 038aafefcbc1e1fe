package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Glow-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/Glow-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidRequest     = "Invalid booking request."
	msgPastBooking        = "Booking must be in the future."
	msgOutOfHours         = "Bookings must be between 9 AM and 6 PM."
	msgServiceNotFound    = "Service not found."
	msgSlotUnavailable    = "Time slot is already booked."
	msgPersistence        = "Failed to create booking."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPastBooking):
			h.logger.Warn("POST /bookings - Past booking: center_id=%s, scheduled=%s", req.CenterID, req.Scheduled)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, createBooking.ErrOutOfHours):
			h.logger.Warn("POST /bookings - Out of hours: center_id=%s, scheduled=%s", req.CenterID, req.Scheduled)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: center_id=%s, scheduled=%s", req.CenterID, req.Scheduled)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrPersistence):
			h.logger.Error("POST /bookings - Persistence failure: center_id=%s, error=%v", req.CenterID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistence)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: center_id=%s, error=%v", req.CenterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, center_id=%s",
		result.ID, req.CenterID)
	handlers.RespondData(w, http.StatusCreated, FromUseCaseResponse(result))
}
