package engine

import (
	"context"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
)

// StateStore интерфейс адаптера персистентности.
// SaveState обязан записывать обе коллекции атомарно: частично сохраненное
// состояние не должно быть наблюдаемым.
type StateStore interface {
	LoadSlots(ctx context.Context) ([]*domain.TimeSlot, error)
	LoadReservations(ctx context.Context) ([]*domain.Reservation, error)
	SaveState(ctx context.Context, slots []*domain.TimeSlot, reservations []*domain.Reservation) error
}

// Metrics интерфейс для счетчиков операций движка
type Metrics interface {
	IncEngineOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
