package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWire_RoundTrip(t *testing.T) {
	const wire = "2025-10-15T10:30:00.000Z"

	parsed, err := ParseWire(wire)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), parsed)
	assert.Equal(t, wire, FormatWire(parsed))
}

func TestParseWire_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025-10-15", "2025-10-15 10:30", "not-a-time"} {
		_, err := ParseWire(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestFormatWire_NormalizesZone(t *testing.T) {
	// Момент в другой зоне форматируется как его UTC wall-clock
	loc := time.FixedZone("plus3", 3*60*60)
	instant := time.Date(2025, 10, 15, 13, 0, 0, 0, loc)

	assert.Equal(t, "2025-10-15T10:00:00.000Z", FormatWire(instant))
}

func TestMinuteOfDay(t *testing.T) {
	instant := time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, 9*60+30, MinuteOfDay(instant))
	assert.Equal(t, 0, MinuteOfDay(StartOfDay(instant)))
}

func TestAtMinute_InverseOfMinuteOfDay(t *testing.T) {
	// Абсолютный момент и минуты-от-полуночи - взаимозаменяемые
	// представления одного интервала
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	for _, m := range []int{0, 9 * 60, 9*60 + 30, 17 * 60, 23*60 + 59} {
		instant := AtMinute(date, m)
		assert.Equal(t, m, MinuteOfDay(instant))
		assert.True(t, SameDay(date, instant))
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15.10.2025")
	assert.Error(t, err)
}
