package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Glow-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/Glow-BookingService/internal/infra/storage/service"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	slotCache    SlotCache
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	slotCache SlotCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		slotCache:    slotCache,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Доступность пересчитывается внутри сериализуемой транзакции по свежему
// чтению; авторитетная защита от гонки - exclusion constraint хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: center=%s, service=%s, scheduled=%s",
		req.CenterID, req.ServiceID, timeutil.FormatWire(req.Scheduled))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Прошлое и рабочие часы проверяются до похода в хранилище
	now := uc.timeProvider.Now()
	if err := validateSchedule(req.Scheduled, now); err != nil {
		uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
		return nil, err
	}

	// 3. Разрешаем длительность услуги
	duration, err := uc.serviceRepo.GetDuration(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service duration id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service duration: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Пересчет доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Свежее чтение бронирований дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByCenterAndDate(txCtx, req.CenterID, req.Scheduled)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Запрошенный момент обязан быть в свежем множестве слотов
		if !slotAvailable(req.Scheduled, duration, bookings) {
			uc.logger.Warn("CreateBooking: slot %s not available for center=%s",
				timeutil.FormatWire(req.Scheduled), req.CenterID)
			return ErrSlotUnavailable
		}

		// 4.3. Сохраняем бронирование с денормализованной длительностью
		booking := &domain.Booking{
			CenterID:        req.CenterID,
			ServiceID:       req.ServiceID,
			Scheduled:       req.Scheduled,
			DurationMinutes: duration,
			Name:            req.Name,
			Email:           req.Email,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Конкурирующий коммит успел раньше - constraint сработал
				uc.logger.Warn("CreateBooking: concurrent booking won the slot %s at center=%s",
					timeutil.FormatWire(req.Scheduled), req.CenterID)
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Сигнализируем об изменении данных слотов центра на эту дату.
	// Ошибка инвалидации не отменяет созданное бронирование: кеш
	// короткоживущий и не авторитетный.
	if err := uc.slotCache.Invalidate(ctx, req.CenterID, req.Scheduled); err != nil {
		uc.logger.Warn("CreateBooking: cache invalidation failed: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		CenterID:        result.CenterID,
		ServiceID:       result.ServiceID,
		Scheduled:       result.Scheduled,
		DurationMinutes: result.DurationMinutes,
		Name:            result.Name,
		Email:           result.Email,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
