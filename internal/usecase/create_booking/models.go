package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	CenterID  uuid.UUID // ID центра
	ServiceID uuid.UUID // ID услуги
	Name      string    // Имя клиента
	Email     string    // Email клиента
	Scheduled time.Time // Запрошенный момент начала (псевдо-UTC)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              uuid.UUID // ID созданного бронирования
	CenterID        uuid.UUID // ID центра
	ServiceID       uuid.UUID // ID услуги
	Scheduled       time.Time // Момент начала
	DurationMinutes int       // Длительность в минутах
	Name            string    // Имя клиента
	Email           string    // Email клиента
	CreatedAt       time.Time // Время создания
	UpdatedAt       time.Time // Время обновления
}
