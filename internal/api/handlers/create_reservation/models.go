package create_reservation

import (
	createReservation "github.com/harutok/SchoolReserve-Service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SlotID       string `json:"slotId"`
	StudentName  string `json:"studentName"`
	GuardianName string `json:"guardianName"`
	Email        string `json:"email"`
	Memo         string `json:"memo,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           string `json:"id"`
	SlotID       string `json:"slotId"`
	StudentName  string `json:"studentName"`
	GuardianName string `json:"guardianName"`
	Email        string `json:"email"`
	Memo         string `json:"memo,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		SlotID:       r.SlotID,
		StudentName:  r.StudentName,
		GuardianName: r.GuardianName,
		Email:        r.Email,
		Memo:         r.Memo,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		SlotID:       resp.SlotID,
		StudentName:  resp.StudentName,
		GuardianName: resp.GuardianName,
		Email:        resp.Email,
		Memo:         resp.Memo,
	}
}
