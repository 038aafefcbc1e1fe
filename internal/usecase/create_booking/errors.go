package create_booking

import "errors"

var (
	// ErrPastBooking возвращается, когда запрошенное время не в будущем
	ErrPastBooking = errors.New("create_booking: booking must be in the future")

	// ErrOutOfHours возвращается, когда запрошенное время вне рабочих часов
	ErrOutOfHours = errors.New("create_booking: booking is outside business hours")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	// или у нее нет положительной длительности
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotUnavailable возвращается, когда запрошенное время отсутствует
	// в свеже-пересчитанном множестве доступных слотов либо вставка
	// нарушила exclusion constraint хранилища
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPersistence возвращается при сбое записи бронирования
	ErrPersistence = errors.New("create_booking: failed to persist booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
