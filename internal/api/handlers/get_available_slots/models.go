package get_available_slots

import (
	getAvailableSlots "github.com/harutok/SchoolReserve-Service/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот в HTTP ответе.
// Поля бронирований сюда не попадают: гардиан видит только доступность.
type SlotResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TeacherID      string         `json:"teacherId"`
	TeacherName    string         `json:"teacherName,omitempty"`
	TeacherSubject string         `json:"teacherSubject,omitempty"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &AvailableSlotsResponse{
		TeacherID:      resp.TeacherID,
		TeacherName:    resp.TeacherName,
		TeacherSubject: resp.TeacherSubject,
		Slots:          slots,
	}
}
