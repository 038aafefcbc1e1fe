package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/Glow-BookingService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	slotCache   SlotCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	slotCache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		slotCache:   slotCache,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: center=%s, service=%s, date=%s",
		req.CenterID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем длительность услуги
	duration, err := uc.serviceRepo.GetDuration(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service duration id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service duration: %v", ErrInternal, err)
	}

	// 3. Пробуем кеш. Ошибки кеша не фатальны - пересчитываем заново
	if cached, ok, err := uc.slotCache.Get(ctx, req.CenterID, req.Date, req.ServiceID); err != nil {
		uc.logger.Warn("GetAvailableSlots: cache read failed: %v", err)
	} else if ok {
		uc.logger.Info("GetAvailableSlots: cache hit, %d slots for center=%s, date=%s, service=%s",
			len(cached), req.CenterID, req.Date.Format(domain.DateFormat), req.ServiceID)
		return uc.response(req, cached), nil
	}

	// 4. Получаем существующие бронирования центра на дату
	bookings, err := uc.bookingRepo.GetByCenterAndDate(ctx, req.CenterID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты по сетке рабочего дня
	slots := generateSlots(req.Date, duration, bookedIntervals(bookings))

	// 6. Кешируем результат (best effort)
	if err := uc.slotCache.Set(ctx, req.CenterID, req.Date, req.ServiceID, slots); err != nil {
		uc.logger.Warn("GetAvailableSlots: cache write failed: %v", err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for center=%s, date=%s, service=%s",
		len(slots), req.CenterID, req.Date.Format(domain.DateFormat), req.ServiceID)

	return uc.response(req, slots), nil
}

func (uc *UseCase) response(req *Request, slots []time.Time) *Response {
	return &Response{
		CenterID:  req.CenterID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     slots,
	}
}
