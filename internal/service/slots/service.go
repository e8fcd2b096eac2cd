package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	"github.com/harutok/SchoolReserve-Service/internal/service/engine"
	"github.com/harutok/SchoolReserve-Service/pkg/types"
)

// Service сервис управления слотами для проекции персонала
type Service struct {
	engine ReservationEngine
	logger Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(reservationEngine ReservationEngine, logger Logger) *Service {
	return &Service{
		engine: reservationEngine,
		logger: logger,
	}
}

// ListByTeacher возвращает все слоты учителя, включая забронированные
func (s *Service) ListByTeacher(ctx context.Context, teacherID string) ([]SlotView, error) {
	if strings.TrimSpace(teacherID) == "" {
		return nil, fmt.Errorf("%w: teacherId is required", ErrInvalidInput)
	}

	result := make([]SlotView, 0)
	for _, slot := range s.engine.SlotsByTeacher(teacherID) {
		result = append(result, SlotView{
			ID:         slot.ID,
			TeacherID:  slot.TeacherID,
			Date:       slot.Date,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			IsReserved: slot.IsReserved,
		})
	}

	s.logger.Info("ListByTeacher: %d slots for teacher id=%s", len(result), teacherID)
	return result, nil
}

// Add создает новый слот. Проверяются только форматы даты и времени;
// порядок начала/конца и пересечения с существующими слотами не проверяются.
func (s *Service) Add(ctx context.Context, req *AddSlotRequest) (*SlotView, error) {
	if strings.TrimSpace(req.TeacherID) == "" {
		return nil, fmt.Errorf("%w: teacherId is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format, expected HH:MM", ErrInvalidInput)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime format, expected HH:MM", ErrInvalidInput)
	}

	slot, err := s.engine.AddSlot(ctx, req.TeacherID, req.Date, startTime, endTime)
	if err != nil {
		if errors.Is(err, engine.ErrPersistence) {
			s.logger.Error("Add: persistence failed for teacher id=%s: %v", req.TeacherID, err)
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		s.logger.Error("Add: engine error for teacher id=%s: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Add: slot id=%s created for teacher id=%s", slot.ID, req.TeacherID)
	return &SlotView{
		ID:         slot.ID,
		TeacherID:  slot.TeacherID,
		Date:       slot.Date,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		IsReserved: slot.IsReserved,
	}, nil
}

// Remove удаляет слот. Забронированный слот удалить нельзя.
func (s *Service) Remove(ctx context.Context, slotID string) error {
	if strings.TrimSpace(slotID) == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if err := s.engine.RemoveSlot(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, engine.ErrSlotNotFound):
			s.logger.Warn("Remove: slot id=%s not found", slotID)
			return ErrSlotNotFound
		case errors.Is(err, engine.ErrSlotReserved):
			s.logger.Warn("Remove: slot id=%s is reserved, removal refused", slotID)
			return ErrSlotReserved
		case errors.Is(err, engine.ErrPersistence):
			s.logger.Error("Remove: persistence failed for slot id=%s: %v", slotID, err)
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		default:
			s.logger.Error("Remove: engine error for slot id=%s: %v", slotID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Remove: slot id=%s removed", slotID)
	return nil
}
