package reservations

import "errors"

var (
	// ErrExport возвращается при ошибке выгрузки CSV
	ErrExport = errors.New("reservations service: failed to export csv")
)
