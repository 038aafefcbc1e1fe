package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    NewInterval(at(10, 0), 60),
			b:    NewInterval(at(10, 30), 60),
			want: true,
		},
		{
			name: "containment",
			a:    NewInterval(at(10, 0), 120),
			b:    NewInterval(at(10, 30), 30),
			want: true,
		},
		{
			name: "identical",
			a:    NewInterval(at(10, 0), 60),
			b:    NewInterval(at(10, 0), 60),
			want: true,
		},
		{
			name: "back-to-back do not overlap",
			a:    NewInterval(at(10, 0), 60),
			b:    NewInterval(at(11, 0), 60),
			want: false,
		},
		{
			name: "disjoint",
			a:    NewInterval(at(9, 0), 30),
			b:    NewInterval(at(14, 0), 30),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewInterval(t *testing.T) {
	i := NewInterval(at(9, 0), 45)

	assert.Equal(t, at(9, 0), i.Start)
	assert.Equal(t, at(9, 45), i.End)
	assert.Equal(t, 45, i.DurationMinutes())
}

func TestBooking_Interval(t *testing.T) {
	b := &Booking{Scheduled: at(10, 0), DurationMinutes: 60}

	assert.Equal(t, NewInterval(at(10, 0), 60), b.Interval())
}
