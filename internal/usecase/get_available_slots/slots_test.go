package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func slotAt(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	slots := generateSlots(testDate, 30, nil)

	// 09:00 .. 17:30 с шагом 30 минут
	require.Len(t, slots, 18)
	assert.Equal(t, slotAt(9, 0), slots[0])
	assert.Equal(t, slotAt(17, 30), slots[len(slots)-1])
}

func TestGenerateSlots_ExistingBookingExcludesOverlaps(t *testing.T) {
	// Рабочий день 09:00-18:00, бронирование 10:00-11:00, услуга 60 минут:
	// исключаются 09:30, 10:00, 10:30; 09:00 и 11:00 остаются
	booked := []domain.Interval{domain.NewInterval(slotAt(10, 0), 60)}

	slots := generateSlots(testDate, 60, booked)

	assert.Contains(t, slots, slotAt(9, 0))
	assert.NotContains(t, slots, slotAt(9, 30))
	assert.NotContains(t, slots, slotAt(10, 0))
	assert.NotContains(t, slots, slotAt(10, 30))
	assert.Contains(t, slots, slotAt(11, 0))
	assert.Contains(t, slots, slotAt(11, 30))

	// Последний слот 60-минутной услуги начинается в 17:00
	assert.Equal(t, slotAt(17, 0), slots[len(slots)-1])
}

func TestGenerateSlots_SlotMustEndByClosing(t *testing.T) {
	for _, tt := range []struct {
		duration  int
		lastStart time.Time
	}{
		{30, slotAt(17, 30)},
		{60, slotAt(17, 0)},
		{90, slotAt(16, 30)},
		{120, slotAt(16, 0)},
	} {
		slots := generateSlots(testDate, tt.duration, nil)
		require.NotEmpty(t, slots)
		assert.Equal(t, tt.lastStart, slots[len(slots)-1], "duration=%d", tt.duration)

		for _, s := range slots {
			end := s.Add(time.Duration(tt.duration) * time.Minute)
			assert.False(t, end.After(slotAt(18, 0)), "slot %v runs past closing", s)
		}
	}
}

func TestGenerateSlots_OffGridDurationKeepsGridStarts(t *testing.T) {
	// Услуга 45 минут: начала остаются на 30-минутной сетке,
	// двигается только конец занимаемого интервала
	slots := generateSlots(testDate, 45, nil)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		m := timeutil.MinuteOfDay(s)
		assert.Zero(t, (m-domain.OpenMinute)%domain.SlotStepMinutes, "slot %v off grid", s)
	}

	// 17:30 + 45 минут выбегает за 18:00, последний слот 17:00
	assert.Equal(t, slotAt(17, 0), slots[len(slots)-1])
}

func TestGenerateSlots_BackToBackDoesNotConflict(t *testing.T) {
	// Бронирование заканчивается ровно в 10:00 - слот на 10:00 доступен
	booked := []domain.Interval{domain.NewInterval(slotAt(9, 0), 60)}

	slots := generateSlots(testDate, 60, booked)

	assert.NotContains(t, slots, slotAt(9, 0))
	assert.NotContains(t, slots, slotAt(9, 30))
	assert.Contains(t, slots, slotAt(10, 0))
}

func TestGenerateSlots_NoSlotOverlapsBookings(t *testing.T) {
	booked := []domain.Interval{
		domain.NewInterval(slotAt(9, 30), 45),
		domain.NewInterval(slotAt(12, 0), 90),
		domain.NewInterval(slotAt(17, 0), 60),
	}

	slots := generateSlots(testDate, 60, booked)

	for _, s := range slots {
		candidate := domain.NewInterval(s, 60)
		for _, b := range booked {
			assert.False(t, candidate.Overlaps(b), "slot %v overlaps booking %v", s, b)
		}
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	booked := []domain.Interval{domain.NewInterval(slotAt(11, 0), 60)}

	first := generateSlots(testDate, 60, booked)
	second := generateSlots(testDate, 60, booked)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_Ascending(t *testing.T) {
	slots := generateSlots(testDate, 30, nil)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}
}

func TestGenerateSlots_DurationLongerThanDay(t *testing.T) {
	slots := generateSlots(testDate, 10*60, nil)

	assert.Empty(t, slots)
}
