package engine

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот с указанным ID не существует
	ErrSlotNotFound = errors.New("engine: slot not found")

	// ErrSlotAlreadyReserved возвращается при попытке забронировать уже занятый слот
	ErrSlotAlreadyReserved = errors.New("engine: slot is already reserved")

	// ErrSlotReserved возвращается при попытке удалить забронированный слот
	ErrSlotReserved = errors.New("engine: reserved slot cannot be removed")

	// ErrTeacherNotFound возвращается, когда учитель с указанным ID не существует
	ErrTeacherNotFound = errors.New("engine: teacher not found")

	// ErrPersistence возвращается, когда состояние не удалось сохранить.
	// Мутация при этом не применяется: состояние в памяти остается прежним.
	ErrPersistence = errors.New("engine: failed to persist state")
)
