package get_advice

import (
	"net/http"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
)

const msgInvalidRequestBody = "リクエスト本文が正しくありません"

// AdviceRequest HTTP request model
type AdviceRequest struct {
	Memo string `json:"memo"`
}

// AdviceResponse HTTP response model
type AdviceResponse struct {
	Advice string `json:"advice"`
}

type Handler struct {
	generator AdviceGenerator
	logger    Logger
}

func NewHandler(generator AdviceGenerator, logger Logger) *Handler {
	return &Handler{
		generator: generator,
		logger:    logger,
	}
}

// Handle POST /api/v1/advice
//
// Всегда отвечает 200 с текстом совета или заглушкой: отказ генератора не
// должен мешать гардиану завершить бронирование с собственным текстом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /advice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	advice := h.generator.GetAdviceWithFallback(r.Context(), req.Memo)
	handlers.RespondJSON(w, http.StatusOK, AdviceResponse{Advice: advice})
}
