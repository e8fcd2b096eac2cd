package add_slot

import (
	"errors"
	"net/http"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
	slotsService "github.com/harutok/SchoolReserve-Service/internal/service/slots"
)

const (
	msgInvalidRequestBody = "リクエスト本文が正しくありません"
	msgInvalidInput       = "教員ID・日付（YYYY-MM-DD）・時刻（HH:MM）を正しく指定してください"
	msgPersistenceFailed  = "予約枠を保存できませんでした。時間をおいて再度お試しください"
)

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

// Handle POST /api/v1/staff/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /staff/slots - Validation failed: teacher_id=%s, error=%v", req.TeacherID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slotsService.ErrPersistence):
			h.logger.Error("POST /staff/slots - Persistence failed: teacher_id=%s, error=%v", req.TeacherID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPersistenceFailed)

		default:
			h.logger.Error("POST /staff/slots - Failed to add slot: teacher_id=%s, error=%v", req.TeacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/slots - Slot created: slot_id=%s, teacher_id=%s", result.ID, result.TeacherID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceView(result))
}
