package slotcache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Noop - заглушка кеша, когда Redis выключен в конфигурации.
// Get всегда промахивается, Set/Invalidate ничего не делают.
type Noop struct{}

// NewNoop создает отключенный кеш
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Get(context.Context, uuid.UUID, time.Time, uuid.UUID) ([]time.Time, bool, error) {
	return nil, false, nil
}

func (*Noop) Set(context.Context, uuid.UUID, time.Time, uuid.UUID, []time.Time) error {
	return nil
}

func (*Noop) Invalidate(context.Context, uuid.UUID, time.Time) error {
	return nil
}
