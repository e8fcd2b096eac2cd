package advicegen

import "errors"

var (
	// ErrUnavailable возвращается, когда сервис генерации недоступен
	// (сеть, таймаут, квота, неожиданный статус-код)
	ErrUnavailable = errors.New("advicegen client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("advicegen client: invalid response")

	// ErrEmptyMemo возвращается при пустом тексте обращения
	ErrEmptyMemo = errors.New("advicegen client: memo is empty")

	// ErrNotConfigured возвращается, когда генерация выключена или не задан API-ключ
	ErrNotConfigured = errors.New("advicegen client: not configured")
)
