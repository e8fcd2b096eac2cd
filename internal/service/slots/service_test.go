package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	"github.com/harutok/SchoolReserve-Service/internal/service/engine"
	"github.com/harutok/SchoolReserve-Service/pkg/types"
)

type mockEngine struct {
	slots     []*domain.TimeSlot
	addErr    error
	removeErr error
	removed   string
}

func (m *mockEngine) SlotsByTeacher(teacherID string) []*domain.TimeSlot {
	result := make([]*domain.TimeSlot, 0)
	for _, s := range m.slots {
		if s.TeacherID == teacherID {
			result = append(result, s)
		}
	}
	return result
}

func (m *mockEngine) AddSlot(_ context.Context, teacherID, date string, startTime, endTime types.TimeString) (*domain.TimeSlot, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	return &domain.TimeSlot{
		ID:        "new-slot",
		TeacherID: teacherID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

func (m *mockEngine) RemoveSlot(_ context.Context, slotID string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = slotID
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_ListByTeacher(t *testing.T) {
	eng := &mockEngine{
		slots: []*domain.TimeSlot{
			{ID: "s1", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:00", EndTime: "15:20"},
			{ID: "s2", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:30", EndTime: "15:50", IsReserved: true},
			{ID: "s4", TeacherID: "t2", Date: "2024-12-11", StartTime: "14:00", EndTime: "14:20"},
		},
	}
	svc := NewService(eng, nopLogger{})

	// Проекция персонала содержит и забронированные слоты
	views, err := svc.ListByTeacher(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[1].IsReserved)

	_, err = svc.ListByTeacher(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Add(t *testing.T) {
	svc := NewService(&mockEngine{}, nopLogger{})

	view, err := svc.Add(context.Background(), &AddSlotRequest{
		TeacherID: "t3",
		Date:      "2025-01-20",
		StartTime: "10:00",
		EndTime:   "10:20",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-slot", view.ID)
	assert.False(t, view.IsReserved)
}

func TestService_Add_FormatValidation(t *testing.T) {
	tests := []struct {
		name string
		req  AddSlotRequest
	}{
		{"empty teacher id", AddSlotRequest{TeacherID: "", Date: "2025-01-20", StartTime: "10:00", EndTime: "10:20"}},
		{"bad date", AddSlotRequest{TeacherID: "t1", Date: "20-01-2025", StartTime: "10:00", EndTime: "10:20"}},
		{"bad start time", AddSlotRequest{TeacherID: "t1", Date: "2025-01-20", StartTime: "10am", EndTime: "10:20"}},
		{"bad end time", AddSlotRequest{TeacherID: "t1", Date: "2025-01-20", StartTime: "10:00", EndTime: "25:99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockEngine{}, nopLogger{})
			_, err := svc.Add(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Add_OrderNotChecked(t *testing.T) {
	svc := NewService(&mockEngine{}, nopLogger{})

	// Конец раньше начала формат-валидацию проходит
	_, err := svc.Add(context.Background(), &AddSlotRequest{
		TeacherID: "t1",
		Date:      "2025-01-20",
		StartTime: "11:00",
		EndTime:   "10:00",
	})
	assert.NoError(t, err)
}

func TestService_Remove(t *testing.T) {
	eng := &mockEngine{}
	svc := NewService(eng, nopLogger{})

	require.NoError(t, svc.Remove(context.Background(), "s1"))
	assert.Equal(t, "s1", eng.removed)
}

func TestService_Remove_EngineErrors(t *testing.T) {
	tests := []struct {
		name      string
		engineErr error
		wantErr   error
	}{
		{"not found", engine.ErrSlotNotFound, ErrSlotNotFound},
		{"reserved", engine.ErrSlotReserved, ErrSlotReserved},
		{"persistence", engine.ErrPersistence, ErrPersistence},
		{"unknown", assert.AnError, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockEngine{removeErr: tt.engineErr}, nopLogger{})
			assert.ErrorIs(t, svc.Remove(context.Background(), "s1"), tt.wantErr)
		})
	}
}
