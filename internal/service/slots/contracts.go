package slots

import (
	"context"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	"github.com/harutok/SchoolReserve-Service/pkg/types"
)

// ReservationEngine интерфейс движка бронирования
type ReservationEngine interface {
	SlotsByTeacher(teacherID string) []*domain.TimeSlot
	AddSlot(ctx context.Context, teacherID, date string, startTime, endTime types.TimeString) (*domain.TimeSlot, error)
	RemoveSlot(ctx context.Context, slotID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
