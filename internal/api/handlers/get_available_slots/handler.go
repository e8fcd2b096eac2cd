package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
	getAvailableSlots "github.com/harutok/SchoolReserve-Service/internal/usecase/get_available_slots"
)

const msgTeacherIDRequired = "教員IDを指定してください"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID := mux.Vars(r)["teacherId"]

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{TeacherID: teacherID})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /teachers/{teacherId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgTeacherIDRequired)
			return
		}
		h.logger.Error("GET /teachers/{teacherId}/available-slots - Failed: teacher_id=%s, error=%v", teacherID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
