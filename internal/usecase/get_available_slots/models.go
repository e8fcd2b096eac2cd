package get_available_slots

import "github.com/harutok/SchoolReserve-Service/pkg/types"

// Request модель запроса доступных слотов
type Request struct {
	TeacherID string // ID учителя
}

// Slot свободный слот в проекции гардиана: только то, что нужно для выбора
// времени. Данные чужих бронирований в эту проекцию не попадают никогда.
type Slot struct {
	ID        string
	Date      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response модель ответа со свободными слотами учителя
type Response struct {
	TeacherID      string
	TeacherName    string // пустая строка, если учитель не найден
	TeacherSubject string
	Slots          []Slot
}
