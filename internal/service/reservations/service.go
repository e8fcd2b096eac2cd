package reservations

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// csvHeader заголовок выгрузки. Колонки совпадают с выгрузкой первой версии системы.
var csvHeader = []string{"日付", "開始", "終了", "教員", "児童生徒名", "保護者名", "メール", "メモ"}

// Service сервис списка бронирований для проекции персонала
type Service struct {
	engine ReservationEngine
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationEngine ReservationEngine, logger Logger) *Service {
	return &Service{
		engine: reservationEngine,
		logger: logger,
	}
}

// List возвращает все забронированные слоты, соединенные с данными
// бронирующих, в исходном порядке слотов. Забронированный слот без
// бронирования попадает в список как "неизвестный бронирующий";
// осиротевшее бронирование без слота (патологическое состояние) тоже
// отображается, с пустыми данными слота.
func (s *Service) List(ctx context.Context) []Entry {
	slotList := s.engine.Slots()
	reservationList := s.engine.Reservations()

	bySlotID := make(map[string]int, len(reservationList))
	for i, r := range reservationList {
		if _, dup := bySlotID[r.SlotID]; !dup {
			bySlotID[r.SlotID] = i
		}
	}

	entries := make([]Entry, 0)
	seen := make(map[string]bool, len(reservationList))

	for _, slot := range slotList {
		if !slot.IsReserved {
			continue
		}

		entry := Entry{
			SlotID:    slot.ID,
			TeacherID: slot.TeacherID,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
		if teacher, err := s.engine.TeacherByID(slot.TeacherID); err == nil {
			entry.TeacherName = teacher.Name
		}

		if i, ok := bySlotID[slot.ID]; ok {
			r := reservationList[i]
			entry.ReservationID = r.ID
			entry.StudentName = r.StudentName
			entry.GuardianName = r.GuardianName
			entry.Email = r.Email
			entry.Memo = r.Memo
			seen[r.ID] = true
		} else {
			entry.UnknownBooker = true
		}

		entries = append(entries, entry)
	}

	// Осиротевшие бронирования: слот не найден или не помечен занятым
	for _, r := range reservationList {
		if seen[r.ID] {
			continue
		}
		s.logger.Warn("List: reservation id=%s has no matching reserved slot id=%s", r.ID, r.SlotID)
		entries = append(entries, Entry{
			SlotID:        r.SlotID,
			ReservationID: r.ID,
			StudentName:   r.StudentName,
			GuardianName:  r.GuardianName,
			Email:         r.Email,
			Memo:          r.Memo,
		})
	}

	s.logger.Info("List: %d reservation entries", len(entries))
	return entries
}

// ExportCSV выгружает список бронирований в CSV
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	entries := s.List(ctx)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrExport, err)
	}

	for _, e := range entries {
		studentName := e.StudentName
		if e.UnknownBooker {
			studentName = "（不明）"
		}
		record := []string{
			e.Date,
			e.StartTime.String(),
			e.EndTime.String(),
			e.TeacherName,
			studentName,
			e.GuardianName,
			e.Email,
			e.Memo,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: write record: %v", ErrExport, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrExport, err)
	}

	s.logger.Info("ExportCSV: exported %d entries", len(entries))
	return nil
}
