package get_available_slots

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case для получения свободных слотов учителя
type UseCase struct {
	engine ReservationEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationEngine ReservationEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: reservationEngine,
		logger: logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Слоты возвращаются в исходном порядке движка; неизвестный учитель дает
// пустой список, а не ошибку (толерантность к промаху поиска).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.TeacherID) == "" {
		return nil, fmt.Errorf("%w: teacherId is required", ErrInvalidInput)
	}

	resp := &Response{
		TeacherID: req.TeacherID,
		Slots:     []Slot{},
	}

	if teacher, err := uc.engine.TeacherByID(req.TeacherID); err == nil {
		resp.TeacherName = teacher.Name
		resp.TeacherSubject = teacher.Subject
	} else {
		uc.logger.Warn("GetAvailableSlots: teacher id=%s not found, returning empty list", req.TeacherID)
	}

	for _, s := range uc.engine.ListAvailableSlots(req.TeacherID) {
		resp.Slots = append(resp.Slots, Slot{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d available slots for teacher id=%s", len(resp.Slots), req.TeacherID)
	return resp, nil
}
