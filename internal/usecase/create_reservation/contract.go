package create_reservation

import (
	"context"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	"github.com/harutok/SchoolReserve-Service/internal/service/engine"
)

// ReservationEngine интерфейс движка бронирования
type ReservationEngine interface {
	Book(ctx context.Context, slotID string, details engine.BookingDetails) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
