package get_available_slots

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CenterID  uuid.UUID // ID центра
	ServiceID uuid.UUID // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	CenterID  uuid.UUID   // ID центра
	ServiceID uuid.UUID   // ID услуги
	Date      time.Time   // Дата, на которую запрашивались слоты
	Slots     []time.Time // Моменты начала доступных слотов, по возрастанию
}
