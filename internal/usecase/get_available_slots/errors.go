package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	// или у нее нет положительной длительности
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при сбоях чтения хранилища и прочих
	// внутренних ошибках; не смешивается с ErrServiceNotFound
	ErrInternal = errors.New("get_available_slots: internal error")
)
