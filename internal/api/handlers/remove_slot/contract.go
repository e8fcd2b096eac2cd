package remove_slot

import "context"

// SlotsService интерфейс сервиса слотов
type SlotsService interface {
	Remove(ctx context.Context, slotID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
