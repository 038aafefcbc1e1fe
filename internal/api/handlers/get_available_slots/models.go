package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	getAvailableSlots "github.com/m04kA/Glow-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(centerID, serviceID uuid.UUID, date time.Time) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		CenterID:  centerID,
		ServiceID: serviceID,
		Date:      date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в список проводных
// временных меток (ISO-8601, псевдо-UTC), по возрастанию
func FromUseCaseResponse(resp *getAvailableSlots.Response) []string {
	slots := make([]string, len(resp.Slots))
	for i, t := range resp.Slots {
		slots[i] = timeutil.FormatWire(t)
	}
	return slots
}
