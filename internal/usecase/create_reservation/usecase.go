package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/harutok/SchoolReserve-Service/internal/service/engine"
)

// UseCase use case для создания бронирования
type UseCase struct {
	engine ReservationEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationEngine ReservationEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: reservationEngine,
		logger: logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности слота и создание бронирования выполняются движком
// как один сериализованный переход, поэтому два одновременных запроса на
// один слот не могут оба завершиться успехом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: slot=%s, guardian=%s", req.SlotID, req.GuardianName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронируем слот
	reservation, err := uc.engine.Book(ctx, req.SlotID, engine.BookingDetails{
		StudentName:  req.StudentName,
		GuardianName: req.GuardianName,
		Email:        req.Email,
		Memo:         req.Memo,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrSlotNotFound):
			uc.logger.Warn("CreateReservation: slot id=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, engine.ErrSlotAlreadyReserved):
			uc.logger.Warn("CreateReservation: slot id=%s is already reserved", req.SlotID)
			return nil, ErrSlotAlreadyReserved
		case errors.Is(err, engine.ErrPersistence):
			uc.logger.Error("CreateReservation: persistence failed for slot id=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		default:
			uc.logger.Error("CreateReservation: engine error for slot id=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s for slot id=%s",
		reservation.ID, reservation.SlotID)

	return &Response{
		ID:           reservation.ID,
		SlotID:       reservation.SlotID,
		StudentName:  reservation.StudentName,
		GuardianName: reservation.GuardianName,
		Email:        reservation.Email,
		Memo:         reservation.Memo,
	}, nil
}
