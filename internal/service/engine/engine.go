package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	storage "github.com/harutok/SchoolReserve-Service/internal/infra/storage/state"
	"github.com/harutok/SchoolReserve-Service/pkg/types"
)

// Engine движок бронирования: единственный владелец коллекций слотов и
// бронирований. Все мутации проходят под одним мьютексом (check-then-flip
// выполняется как неделимый переход), состояние зеркалируется в StateStore
// на каждой мутации и загружается при старте.
//
// Мутация считается зафиксированной только после успешной записи в хранилище:
// сначала сохраняется состояние-кандидат, и лишь затем оно подменяет
// состояние в памяти. При ошибке записи память не меняется.
type Engine struct {
	store   StateStore
	metrics Metrics
	log     Logger

	mu           sync.RWMutex
	teachers     []*domain.Teacher
	teacherByID  map[string]*domain.Teacher
	slots        []*domain.TimeSlot
	reservations []*domain.Reservation
}

// New создает новый экземпляр движка. Состояние пустое до вызова Load.
// metrics может быть nil — тогда счетчики операций не ведутся.
func New(store StateStore, metrics Metrics, log Logger) *Engine {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	teachers := domain.SeedTeachers()
	byID := make(map[string]*domain.Teacher, len(teachers))
	for _, t := range teachers {
		byID[t.ID] = t
	}

	return &Engine{
		store:       store,
		metrics:     metrics,
		log:         log,
		teachers:    teachers,
		teacherByID: byID,
	}
}

// Load загружает сохраненное состояние из хранилища.
// Отсутствующая запись заменяется начальными данными (слоты) или пустой
// коллекцией (бронирования); битая запись логируется и тоже заменяется,
// а не роняет сервис.
func (e *Engine) Load(ctx context.Context) error {
	slots, err := e.store.LoadSlots(ctx)
	switch {
	case errors.Is(err, storage.ErrRecordNotFound):
		e.log.Info("Load: no persisted slots, seeding %d initial slots", len(domain.SeedSlots()))
		slots = domain.SeedSlots()
	case errors.Is(err, storage.ErrDecode):
		e.log.Error("Load: persisted slots are malformed, falling back to seed: %v", err)
		slots = domain.SeedSlots()
	case err != nil:
		return fmt.Errorf("%w: load slots: %v", ErrPersistence, err)
	}

	reservations, err := e.store.LoadReservations(ctx)
	switch {
	case errors.Is(err, storage.ErrRecordNotFound):
		reservations = []*domain.Reservation{}
	case errors.Is(err, storage.ErrDecode):
		e.log.Error("Load: persisted reservations are malformed, falling back to empty: %v", err)
		reservations = []*domain.Reservation{}
	case err != nil:
		return fmt.Errorf("%w: load reservations: %v", ErrPersistence, err)
	}

	e.mu.Lock()
	e.slots = slots
	e.reservations = reservations
	e.mu.Unlock()

	e.log.Info("Load: engine state ready, %d slots, %d reservations", len(slots), len(reservations))
	return nil
}

// Teachers возвращает список учителей
func (e *Engine) Teachers() []*domain.Teacher {
	result := make([]*domain.Teacher, len(e.teachers))
	copy(result, e.teachers)
	return result
}

// TeacherByID возвращает учителя по ID
func (e *Engine) TeacherByID(id string) (*domain.Teacher, error) {
	t, ok := e.teacherByID[id]
	if !ok {
		return nil, ErrTeacherNotFound
	}
	return t, nil
}

// ListAvailableSlots возвращает свободные слоты учителя в исходном порядке.
// Неизвестный teacherID дает пустой список, а не ошибку.
func (e *Engine) ListAvailableSlots(teacherID string) []*domain.TimeSlot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]*domain.TimeSlot, 0)
	for _, s := range e.slots {
		if s.TeacherID == teacherID && !s.IsReserved {
			result = append(result, s.Clone())
		}
	}
	return result
}

// SlotsByTeacher возвращает все слоты учителя, включая забронированные
func (e *Engine) SlotsByTeacher(teacherID string) []*domain.TimeSlot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]*domain.TimeSlot, 0)
	for _, s := range e.slots {
		if s.TeacherID == teacherID {
			result = append(result, s.Clone())
		}
	}
	return result
}

// Slots возвращает все слоты
func (e *Engine) Slots() []*domain.TimeSlot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]*domain.TimeSlot, 0, len(e.slots))
	for _, s := range e.slots {
		result = append(result, s.Clone())
	}
	return result
}

// SlotByID возвращает слот по ID
func (e *Engine) SlotByID(id string) (*domain.TimeSlot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, s := range e.slots {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return nil, ErrSlotNotFound
}

// Reservations возвращает все бронирования
func (e *Engine) Reservations() []*domain.Reservation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]*domain.Reservation, 0, len(e.reservations))
	for _, r := range e.reservations {
		result = append(result, r.Clone())
	}
	return result
}

// Book бронирует слот: атомарно создает Reservation и переводит
// IsReserved в true. Повторное бронирование занятого слота отклоняется
// и никогда не создает второе бронирование.
func (e *Engine) Book(ctx context.Context, slotID string, details BookingDetails) (*domain.Reservation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, s := range e.slots {
		if s.ID == slotID {
			idx = i
			break
		}
	}
	if idx == -1 {
		e.log.Warn("Book: slot id=%s not found", slotID)
		e.metrics.IncEngineOperation(opBook, resultRejected)
		return nil, ErrSlotNotFound
	}
	if e.slots[idx].IsReserved {
		e.log.Warn("Book: slot id=%s is already reserved", slotID)
		e.metrics.IncEngineOperation(opBook, resultRejected)
		return nil, ErrSlotAlreadyReserved
	}

	reservation := &domain.Reservation{
		ID:           e.newIDLocked(),
		SlotID:       slotID,
		StudentName:  details.StudentName,
		GuardianName: details.GuardianName,
		Email:        details.Email,
		Memo:         details.Memo,
	}

	newSlots := e.cloneSlotsLocked()
	newSlots[idx].IsReserved = true
	newReservations := append(e.cloneReservationsLocked(), reservation)

	if err := e.store.SaveState(ctx, newSlots, newReservations); err != nil {
		e.log.Error("Book: failed to persist state for slot id=%s: %v", slotID, err)
		e.metrics.IncEngineOperation(opBook, resultError)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	e.slots = newSlots
	e.reservations = newReservations

	e.log.Info("Book: slot id=%s reserved, reservation id=%s", slotID, reservation.ID)
	e.metrics.IncEngineOperation(opBook, resultOK)
	return reservation.Clone(), nil
}

// AddSlot создает новый свободный слот. Порядок времени и пересечения с
// существующими слотами не проверяются, teacherID не проверяется на
// существование — пробелы исходной системы сохранены сознательно.
func (e *Engine) AddSlot(ctx context.Context, teacherID, date string, startTime, endTime types.TimeString) (*domain.TimeSlot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	slot := &domain.TimeSlot{
		ID:         e.newIDLocked(),
		TeacherID:  teacherID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		IsReserved: false,
	}

	newSlots := append(e.cloneSlotsLocked(), slot)

	if err := e.store.SaveState(ctx, newSlots, e.reservations); err != nil {
		e.log.Error("AddSlot: failed to persist state for teacher id=%s: %v", teacherID, err)
		e.metrics.IncEngineOperation(opAddSlot, resultError)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	e.slots = newSlots

	e.log.Info("AddSlot: slot id=%s created for teacher id=%s (%s %s-%s)",
		slot.ID, teacherID, date, startTime, endTime)
	e.metrics.IncEngineOperation(opAddSlot, resultOK)
	return slot.Clone(), nil
}

// RemoveSlot удаляет слот. Забронированный слот удалить нельзя, поэтому
// бронирование никогда не остается без своего слота.
func (e *Engine) RemoveSlot(ctx context.Context, slotID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, s := range e.slots {
		if s.ID == slotID {
			idx = i
			break
		}
	}
	if idx == -1 {
		e.log.Warn("RemoveSlot: slot id=%s not found", slotID)
		e.metrics.IncEngineOperation(opRemoveSlot, resultRejected)
		return ErrSlotNotFound
	}
	if e.slots[idx].IsReserved {
		e.log.Warn("RemoveSlot: slot id=%s is reserved, removal refused", slotID)
		e.metrics.IncEngineOperation(opRemoveSlot, resultRejected)
		return ErrSlotReserved
	}

	newSlots := make([]*domain.TimeSlot, 0, len(e.slots)-1)
	for i, s := range e.slots {
		if i == idx {
			continue
		}
		newSlots = append(newSlots, s.Clone())
	}

	if err := e.store.SaveState(ctx, newSlots, e.reservations); err != nil {
		e.log.Error("RemoveSlot: failed to persist state for slot id=%s: %v", slotID, err)
		e.metrics.IncEngineOperation(opRemoveSlot, resultError)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	e.slots = newSlots

	e.log.Info("RemoveSlot: slot id=%s removed", slotID)
	e.metrics.IncEngineOperation(opRemoveSlot, resultOK)
	return nil
}

// newIDLocked генерирует идентификатор, которого нет ни среди слотов,
// ни среди бронирований (пространства идентификаторов не пересекаются).
// Вызывается только под e.mu.
func (e *Engine) newIDLocked() string {
	for {
		id := uuid.NewString()
		if !e.idInUseLocked(id) {
			return id
		}
	}
}

func (e *Engine) idInUseLocked(id string) bool {
	for _, s := range e.slots {
		if s.ID == id {
			return true
		}
	}
	for _, r := range e.reservations {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (e *Engine) cloneSlotsLocked() []*domain.TimeSlot {
	result := make([]*domain.TimeSlot, 0, len(e.slots))
	for _, s := range e.slots {
		result = append(result, s.Clone())
	}
	return result
}

func (e *Engine) cloneReservationsLocked() []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(e.reservations))
	for _, r := range e.reservations {
		result = append(result, r.Clone())
	}
	return result
}

// noopMetrics заглушка метрик, когда сбор метрик выключен
type noopMetrics struct{}

func (noopMetrics) IncEngineOperation(operation, result string) {}
