package remove_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
	slotsService "github.com/harutok/SchoolReserve-Service/internal/service/slots"
)

const (
	msgSlotNotFound      = "指定された予約枠が見つかりません"
	msgSlotReserved      = "予約済みの枠は削除できません"
	msgPersistenceFailed = "変更を保存できませんでした。時間をおいて再度お試しください"
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

// Handle DELETE /api/v1/staff/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	if err := h.service.Remove(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /staff/slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrSlotReserved):
			h.logger.Warn("DELETE /staff/slots/{slotId} - Slot reserved: slot_id=%s", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotReserved)

		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("DELETE /staff/slots/{slotId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrPersistence):
			h.logger.Error("DELETE /staff/slots/{slotId} - Persistence failed: slot_id=%s, error=%v", slotID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPersistenceFailed)

		default:
			h.logger.Error("DELETE /staff/slots/{slotId} - Failed: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/slots/{slotId} - Slot removed: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
