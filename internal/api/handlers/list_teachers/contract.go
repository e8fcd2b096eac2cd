package list_teachers

import "github.com/harutok/SchoolReserve-Service/internal/domain"

// ReservationEngine интерфейс движка бронирования
type ReservationEngine interface {
	Teachers() []*domain.Teacher
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
