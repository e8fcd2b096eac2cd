package list_reservations

import (
	"net/http"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
)

// EntryResponse HTTP response model: строка списка бронирований для персонала
type EntryResponse struct {
	SlotID        string `json:"slotId"`
	TeacherID     string `json:"teacherId,omitempty"`
	TeacherName   string `json:"teacherName,omitempty"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	ReservationID string `json:"reservationId,omitempty"`
	StudentName   string `json:"studentName,omitempty"`
	GuardianName  string `json:"guardianName,omitempty"`
	Email         string `json:"email,omitempty"`
	Memo          string `json:"memo,omitempty"`
	UnknownBooker bool   `json:"unknownBooker,omitempty"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries := h.service.List(r.Context())

	response := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, EntryResponse{
			SlotID:        e.SlotID,
			TeacherID:     e.TeacherID,
			TeacherName:   e.TeacherName,
			Date:          e.Date,
			StartTime:     e.StartTime.String(),
			EndTime:       e.EndTime.String(),
			ReservationID: e.ReservationID,
			StudentName:   e.StudentName,
			GuardianName:  e.GuardianName,
			Email:         e.Email,
			Memo:          e.Memo,
			UnknownBooker: e.UnknownBooker,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
