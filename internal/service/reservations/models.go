package reservations

import "github.com/harutok/SchoolReserve-Service/pkg/types"

// Entry строка списка бронирований в проекции персонала: слот, учитель и
// данные бронирующего. Забронированный слот без записи о бронировании —
// допустимое отображаемое состояние (неизвестный бронирующий).
type Entry struct {
	SlotID    string
	TeacherID string
	// TeacherName пустое, если учитель слота не найден в списке
	TeacherName string
	Date        string
	StartTime   types.TimeString
	EndTime     types.TimeString

	// ReservationID пустое при неизвестном бронирующем
	ReservationID string
	StudentName   string
	GuardianName  string
	Email         string
	Memo          string

	// UnknownBooker true, если слот забронирован, но записи о бронировании нет
	UnknownBooker bool
}
