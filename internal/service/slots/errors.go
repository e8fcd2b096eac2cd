package slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots service: invalid input data")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots service: slot not found")

	// ErrSlotReserved возвращается при попытке удалить забронированный слот
	ErrSlotReserved = errors.New("slots service: reserved slot cannot be removed")

	// ErrPersistence возвращается, когда изменение не удалось сохранить
	ErrPersistence = errors.New("slots service: failed to persist state")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)
