// Package slotcache - короткоживущий кеш ответов getAvailableSlots.
// Ключ - redis hash per (center, date), поле - serviceID, значение -
// JSON список проводных временных меток. Кеш клиентский, не авторитетный:
// создание бронирования никогда через него не ходит, а успешный коммит
// инвалидирует весь день центра.
package slotcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

// Cache кеш слотов поверх Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш слотов с указанным TTL
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(centerID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s", centerID, date.UTC().Format(domain.DateFormat))
}

// Get возвращает закешированные слоты и признак попадания
func (c *Cache) Get(ctx context.Context, centerID uuid.UUID, date time.Time, serviceID uuid.UUID) ([]time.Time, bool, error) {
	raw, err := c.client.HGet(ctx, key(centerID, date), serviceID.String()).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("slotcache: get: %w", err)
	}

	var wire []string
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, false, fmt.Errorf("slotcache: decode cached slots: %w", err)
	}

	slots := make([]time.Time, 0, len(wire))
	for _, s := range wire {
		t, err := timeutil.ParseWire(s)
		if err != nil {
			return nil, false, fmt.Errorf("slotcache: parse cached slot %q: %w", s, err)
		}
		slots = append(slots, t)
	}

	return slots, true, nil
}

// Set кеширует слоты для (центр, дата, услуга)
func (c *Cache) Set(ctx context.Context, centerID uuid.UUID, date time.Time, serviceID uuid.UUID, slots []time.Time) error {
	wire := make([]string, 0, len(slots))
	for _, t := range slots {
		wire = append(wire, timeutil.FormatWire(t))
	}

	raw, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("slotcache: encode slots: %w", err)
	}

	k := key(centerID, date)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, k, serviceID.String(), raw)
	pipe.Expire(ctx, k, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("slotcache: set: %w", err)
	}

	return nil
}

// Invalidate сбрасывает кеш всех услуг центра на дату
func (c *Cache) Invalidate(ctx context.Context, centerID uuid.UUID, date time.Time) error {
	if err := c.client.Del(ctx, key(centerID, date)).Err(); err != nil {
		return fmt.Errorf("slotcache: invalidate: %w", err)
	}
	return nil
}
