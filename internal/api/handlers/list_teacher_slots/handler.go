package list_teacher_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
	slotsService "github.com/harutok/SchoolReserve-Service/internal/service/slots"
)

const msgTeacherIDRequired = "教員IDを指定してください"

// SlotResponse HTTP response model: полная проекция слота для персонала
type SlotResponse struct {
	ID         string `json:"id"`
	TeacherID  string `json:"teacherId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	IsReserved bool   `json:"isReserved"`
}

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/teachers/{teacherId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID := mux.Vars(r)["teacherId"]

	slots, err := h.service.ListByTeacher(r.Context(), teacherID)
	if err != nil {
		if errors.Is(err, slotsService.ErrInvalidInput) {
			h.logger.Warn("GET /staff/teachers/{teacherId}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgTeacherIDRequired)
			return
		}
		h.logger.Error("GET /staff/teachers/{teacherId}/slots - Failed: teacher_id=%s, error=%v", teacherID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		response = append(response, SlotResponse{
			ID:         s.ID,
			TeacherID:  s.TeacherID,
			Date:       s.Date,
			StartTime:  s.StartTime.String(),
			EndTime:    s.EndTime.String(),
			IsReserved: s.IsReserved,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
