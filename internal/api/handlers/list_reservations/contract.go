package list_reservations

import (
	"context"

	reservationsService "github.com/harutok/SchoolReserve-Service/internal/service/reservations"
)

// ReservationsService интерфейс сервиса бронирований
type ReservationsService interface {
	List(ctx context.Context) []reservationsService.Entry
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
