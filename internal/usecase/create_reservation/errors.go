package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (отсутствует обязательное поле, превышена допустимая длина)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSlotNotFound возвращается, когда слот не существует
	ErrSlotNotFound = errors.New("create_reservation: slot not found")

	// ErrSlotAlreadyReserved возвращается, когда слот уже забронирован
	ErrSlotAlreadyReserved = errors.New("create_reservation: slot is already reserved")

	// ErrPersistence возвращается, когда бронирование не удалось сохранить
	ErrPersistence = errors.New("create_reservation: failed to persist reservation")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("create_reservation: internal error")
)
