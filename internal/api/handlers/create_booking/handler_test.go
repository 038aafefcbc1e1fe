package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/Glow-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		CenterID:  uuid.New().String(),
		ServiceID: uuid.New().String(),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Scheduled: "2025-10-15T10:00:00.000Z",
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (json.RawMessage, *string) {
	t.Helper()

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error *string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data, envelope.Error
}

func TestHandle_Created(t *testing.T) {
	scheduled := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:              uuid.New(),
			CenterID:        uuid.New(),
			ServiceID:       uuid.New(),
			Scheduled:       scheduled,
			DurationMinutes: 60,
			Name:            "Jane Doe",
			Email:           "jane@example.com",
			CreatedAt:       scheduled,
			UpdatedAt:       scheduled,
		},
	}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	data, errMsg := decodeEnvelope(t, rec)
	assert.Nil(t, errMsg)

	var booking BookingResponse
	require.NoError(t, json.Unmarshal(data, &booking))
	// Round-trip слота: scheduled возвращается в проводном формате
	assert.Equal(t, "2025-10-15T10:00:00.000Z", booking.Scheduled)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"past booking", createBooking.ErrPastBooking, http.StatusBadRequest},
		{"out of hours", createBooking.ErrOutOfHours, http.StatusBadRequest},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"slot unavailable", createBooking.ErrSlotUnavailable, http.StatusConflict},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"persistence failure", createBooking.ErrPersistence, http.StatusInternalServerError},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())

			assert.Equal(t, tt.wantStatus, rec.Code)

			_, errMsg := decodeEnvelope(t, rec)
			require.NotNil(t, errMsg)
			assert.NotEmpty(t, *errMsg)
		})
	}
}

func TestHandle_MalformedScheduled(t *testing.T) {
	body := validBody()
	body.Scheduled = "2025-10-15 10:00"

	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
