package reservations

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	"github.com/harutok/SchoolReserve-Service/internal/service/engine"
)

type mockEngine struct {
	slots        []*domain.TimeSlot
	reservations []*domain.Reservation
	teachers     map[string]*domain.Teacher
}

func (m *mockEngine) Slots() []*domain.TimeSlot { return m.slots }

func (m *mockEngine) Reservations() []*domain.Reservation { return m.reservations }
func (m *mockEngine) TeacherByID(id string) (*domain.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, engine.ErrTeacherNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newMockEngine() *mockEngine {
	return &mockEngine{
		teachers: map[string]*domain.Teacher{
			"t1": {ID: "t1", Name: "佐藤 健一", Subject: "算数・数学"},
		},
		slots: []*domain.TimeSlot{
			{ID: "s1", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:00", EndTime: "15:20", IsReserved: false},
			{ID: "s2", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:30", EndTime: "15:50", IsReserved: true},
			{ID: "s3", TeacherID: "t1", Date: "2024-12-10", StartTime: "16:00", EndTime: "16:20", IsReserved: true},
		},
		reservations: []*domain.Reservation{
			{ID: "r1", SlotID: "s3", StudentName: "山田 太郎", GuardianName: "山田 花子", Email: "yamada@example.com", Memo: "宿題について"},
		},
	}
}

func TestService_List(t *testing.T) {
	svc := NewService(newMockEngine(), nopLogger{})

	entries := svc.List(context.Background())
	require.Len(t, entries, 2)

	// s2 забронирован без записи о бронировании — неизвестный бронирующий
	assert.Equal(t, "s2", entries[0].SlotID)
	assert.True(t, entries[0].UnknownBooker)
	assert.Empty(t, entries[0].ReservationID)
	assert.Equal(t, "佐藤 健一", entries[0].TeacherName)

	// s3 соединен с r1
	assert.Equal(t, "s3", entries[1].SlotID)
	assert.False(t, entries[1].UnknownBooker)
	assert.Equal(t, "r1", entries[1].ReservationID)
	assert.Equal(t, "山田 太郎", entries[1].StudentName)
	assert.Equal(t, "yamada@example.com", entries[1].Email)
}

func TestService_List_OrphanedReservation(t *testing.T) {
	eng := newMockEngine()
	eng.reservations = append(eng.reservations, &domain.Reservation{
		ID: "r2", SlotID: "gone", StudentName: "田中 次郎", GuardianName: "田中 久美", Email: "tanaka@example.com",
	})
	svc := NewService(eng, nopLogger{})

	entries := svc.List(context.Background())
	require.Len(t, entries, 3)

	orphan := entries[2]
	assert.Equal(t, "r2", orphan.ReservationID)
	assert.Equal(t, "gone", orphan.SlotID)
	assert.Empty(t, orphan.Date)
}

func TestService_ExportCSV(t *testing.T) {
	svc := NewService(newMockEngine(), nopLogger{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	// Неизвестный бронирующий выгружается как （不明）
	assert.Equal(t, "（不明）", records[1][4])
	assert.Equal(t, "山田 太郎", records[2][4])
	assert.Equal(t, "2024-12-10", records[2][0])
	assert.Equal(t, "佐藤 健一", records[2][3])
}
