package domain

// Business hours: bookings may start from 09:00 and must end by 18:00.
const (
	OpenHour  = 9
	CloseHour = 18

	OpenMinute  = OpenHour * 60
	CloseMinute = CloseHour * 60
)

// Slot grid step in minutes. Slot starts always align to this grid
// regardless of the service duration; only the slot end moves.
const SlotStepMinutes = 30

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNameLength             = 200
	MaxEmailLength            = 320
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// WireTimeFormat формат временных меток на проводе.
	// Псевдо-UTC: суффикс Z литеральный, время - это локальное рабочее
	// время центров, без привязки к зоне сервера. Слот из getAvailableSlots
	// после round-trip через createBooking совпадает байт-в-байт.
	WireTimeFormat = "2006-01-02T15:04:05.000Z"
)
