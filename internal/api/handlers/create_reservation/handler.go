package create_reservation

import (
	"errors"
	"net/http"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
	createReservation "github.com/harutok/SchoolReserve-Service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "リクエスト本文が正しくありません"
	msgInvalidInput        = "必須項目（児童生徒名・保護者名・メールアドレス）を入力してください"
	msgSlotNotFound        = "指定された予約枠が見つかりません"
	msgSlotAlreadyReserved = "この予約枠は既に予約されています"
	msgPersistenceFailed   = "予約を保存できませんでした。時間をおいて再度お試しください"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Validation failed: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrSlotAlreadyReserved):
			h.logger.Warn("POST /reservations - Slot already reserved: slot_id=%s", req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyReserved)

		case errors.Is(err, createReservation.ErrPersistence):
			h.logger.Error("POST /reservations - Persistence failed: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPersistenceFailed)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, slot_id=%s",
		result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
