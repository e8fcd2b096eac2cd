package get_advice

import "context"

// AdviceGenerator интерфейс генератора советов.
// Реализация обязана деградировать до строки-заглушки вместо ошибки.
type AdviceGenerator interface {
	GetAdviceWithFallback(ctx context.Context, memo string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
