package export_reservations

import (
	"net/http"
)

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

// Handle GET /api/v1/staff/reservations/export
//
// Заголовки пишутся до начала выгрузки, поэтому ошибка посреди записи уже не
// может превратиться в корректный JSON-ответ — она логируется, а ответ
// обрывается.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reservations.csv"`)

	if err := h.service.ExportCSV(r.Context(), w); err != nil {
		h.logger.Error("GET /staff/reservations/export - Export failed: %v", err)
		return
	}

	h.logger.Info("GET /staff/reservations/export - Export completed")
}
