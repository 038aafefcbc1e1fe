package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a confirmed appointment at a center.
// Bookings are immutable once created; there is no reschedule or cancel path.
type Booking struct {
	ID        uuid.UUID
	CenterID  uuid.UUID
	ServiceID uuid.UUID

	// Scheduled start instant (pseudo-UTC wall clock, see WireTimeFormat).
	Scheduled time.Time

	// Denormalized from the service at creation time so that conflict
	// checks and the storage exclusion constraint never need a join.
	DurationMinutes int

	Name  string
	Email string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the occupied half-open interval [Scheduled, Scheduled+Duration).
func (b *Booking) Interval() Interval {
	return NewInterval(b.Scheduled, b.DurationMinutes)
}
