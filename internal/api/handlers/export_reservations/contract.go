package export_reservations

import (
	"context"
	"io"
)

// ReservationsService интерфейс сервиса бронирований
type ReservationsService interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
