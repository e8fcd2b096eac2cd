package slots

import "github.com/harutok/SchoolReserve-Service/pkg/types"

// AddSlotRequest модель запроса на создание слота
type AddSlotRequest struct {
	TeacherID string // ID учителя (на существование не проверяется — пробел исходной системы)
	Date      string // "2006-01-02"
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// SlotView слот в проекции персонала: полный набор полей, включая флаг брони
type SlotView struct {
	ID         string
	TeacherID  string
	Date       string
	StartTime  types.TimeString
	EndTime    types.TimeString
	IsReserved bool
}
