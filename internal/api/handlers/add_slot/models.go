package add_slot

import (
	slotsService "github.com/harutok/SchoolReserve-Service/internal/service/slots"
)

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	TeacherID string `json:"teacherId"`
	Date      string `json:"date"`      // "2024-12-10"
	StartTime string `json:"startTime"` // "16:00"
	EndTime   string `json:"endTime"`   // "16:20"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID         string `json:"id"`
	TeacherID  string `json:"teacherId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	IsReserved bool   `json:"isReserved"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddSlotRequest) ToServiceRequest() *slotsService.AddSlotRequest {
	return &slotsService.AddSlotRequest{
		TeacherID: r.TeacherID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromServiceView конвертирует проекцию сервиса в HTTP response
func FromServiceView(v *slotsService.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:         v.ID,
		TeacherID:  v.TeacherID,
		Date:       v.Date,
		StartTime:  v.StartTime.String(),
		EndTime:    v.EndTime.String(),
		IsReserved: v.IsReserved,
	}
}
