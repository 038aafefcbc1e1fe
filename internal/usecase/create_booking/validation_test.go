package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Glow-BookingService/internal/domain"
)

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		scheduled time.Time
		wantErr   error
	}{
		{"future within hours", time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), nil},
		{"opening hour", time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC), nil},
		{"last grid slot", time.Date(2025, 10, 15, 17, 30, 0, 0, time.UTC), nil},
		{"exactly now", now, ErrPastBooking},
		{"in the past", now.Add(-time.Minute), ErrPastBooking},
		{"before opening", time.Date(2025, 10, 15, 8, 30, 0, 0, time.UTC), ErrOutOfHours},
		{"at closing", time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC), ErrOutOfHours},
		{"late evening", time.Date(2025, 10, 15, 23, 0, 0, 0, time.UTC), ErrOutOfHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSchedule(tt.scheduled, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSlotAvailable(t *testing.T) {
	day := func(hour, min int) time.Time {
		return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
	}

	existing := []*domain.Booking{
		{Scheduled: day(10, 0), DurationMinutes: 60},
	}

	tests := []struct {
		name      string
		scheduled time.Time
		duration  int
		want      bool
	}{
		{"free grid slot", day(9, 0), 60, true},
		{"overlaps from before", day(9, 30), 60, false},
		{"same start", day(10, 0), 60, false},
		{"overlaps from inside", day(10, 30), 60, false},
		{"back-to-back after booking", day(11, 0), 60, true},
		{"off grid", day(11, 15), 30, false},
		{"with seconds", day(11, 0).Add(30 * time.Second), 30, false},
		{"runs past closing", day(17, 30), 60, false},
		{"last fitting slot", day(17, 30), 30, true},
		{"before opening", day(8, 30), 30, false},
		{"at closing", day(18, 0), 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slotAvailable(tt.scheduled, tt.duration, existing))
		})
	}
}
