package list_teachers

import (
	"net/http"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
)

// TeacherResponse HTTP response model
type TeacherResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

type Handler struct {
	engine ReservationEngine
	logger Logger
}

func NewHandler(engine ReservationEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle GET /api/v1/teachers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teachers := h.engine.Teachers()

	response := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		response = append(response, TeacherResponse{
			ID:      t.ID,
			Name:    t.Name,
			Subject: t.Subject,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
