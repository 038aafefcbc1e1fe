package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/Glow-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CenterID  string `json:"centerId"`
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Scheduled string `json:"scheduled"` // "2025-10-15T10:00:00.000Z"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	CenterID        string `json:"centerId"`
	ServiceID       string `json:"serviceId"`
	Scheduled       string `json:"scheduled"`
	DurationMinutes int    `json:"durationMinutes"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	centerID, err := uuid.Parse(r.CenterID)
	if err != nil {
		return nil, err
	}

	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	scheduled, err := timeutil.ParseWire(r.Scheduled)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CenterID:  centerID,
		ServiceID: serviceID,
		Name:      r.Name,
		Email:     r.Email,
		Scheduled: scheduled,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Scheduled сериализуется в проводном формате: round-trip слота из
// getAvailableSlots через createBooking совпадает точно.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID.String(),
		CenterID:        resp.CenterID.String(),
		ServiceID:       resp.ServiceID.String(),
		Scheduled:       timeutil.FormatWire(resp.Scheduled),
		DurationMinutes: resp.DurationMinutes,
		Name:            resp.Name,
		Email:           resp.Email,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
