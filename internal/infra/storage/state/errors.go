package state

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись с указанным ключом отсутствует
	ErrRecordNotFound = errors.New("state.repository: record not found")

	// ErrDecode возвращается при некорректном сериализованном состоянии
	// (битый JSON или неподдерживаемая версия схемы)
	ErrDecode = errors.New("state.repository: failed to decode persisted state")

	// ErrEncode возвращается при ошибке сериализации состояния
	ErrEncode = errors.New("state.repository: failed to encode state")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("state.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("state.repository: failed to execute query")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("state.repository: transaction error")
)
