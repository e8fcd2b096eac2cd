package get_available_slots

import (
	"github.com/harutok/SchoolReserve-Service/internal/domain"
)

// ReservationEngine интерфейс движка бронирования
type ReservationEngine interface {
	ListAvailableSlots(teacherID string) []*domain.TimeSlot
	TeacherByID(id string) (*domain.Teacher, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
