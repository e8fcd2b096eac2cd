package add_slot

import (
	"context"

	slotsService "github.com/harutok/SchoolReserve-Service/internal/service/slots"
)

// SlotsService интерфейс сервиса слотов
type SlotsService interface {
	Add(ctx context.Context, req *slotsService.AddSlotRequest) (*slotsService.SlotView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
