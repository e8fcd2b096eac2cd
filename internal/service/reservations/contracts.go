package reservations

import (
	"github.com/harutok/SchoolReserve-Service/internal/domain"
)

// ReservationEngine интерфейс движка бронирования
type ReservationEngine interface {
	Slots() []*domain.TimeSlot
	Reservations() []*domain.Reservation
	TeacherByID(id string) (*domain.Teacher, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
