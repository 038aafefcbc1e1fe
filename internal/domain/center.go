package domain

import (
	"time"

	"github.com/google/uuid"
)

// Center represents a bookable location offering one or more services.
// Centers are administered out of band and are read-only to this service.
type Center struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}

// Service represents a bookable offering with a fixed duration and price,
// scoped to one center.
type Service struct {
	ID              uuid.UUID
	CenterID        uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
}

// HasDuration returns true if the service has a usable positive duration.
// A service without one is treated as not bookable.
func (s *Service) HasDuration() bool {
	return s.DurationMinutes > 0
}
