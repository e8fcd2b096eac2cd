package create_reservation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
	"github.com/harutok/SchoolReserve-Service/internal/service/engine"
)

type mockEngine struct {
	bookErr  error
	gotSlot  string
	gotInput engine.BookingDetails
}

func (m *mockEngine) Book(_ context.Context, slotID string, details engine.BookingDetails) (*domain.Reservation, error) {
	m.gotSlot = slotID
	m.gotInput = details
	if m.bookErr != nil {
		return nil, m.bookErr
	}
	return &domain.Reservation{
		ID:           "res-1",
		SlotID:       slotID,
		StudentName:  details.StudentName,
		GuardianName: details.GuardianName,
		Email:        details.Email,
		Memo:         details.Memo,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		SlotID:       "s3",
		StudentName:  "山田 太郎",
		GuardianName: "山田 花子",
		Email:        "yamada@example.com",
		Memo:         "最近、算数の宿題を嫌がるようになりました。",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	eng := &mockEngine{}
	uc := NewUseCase(eng, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "s3", resp.SlotID)
	assert.Equal(t, "s3", eng.gotSlot)
	assert.Equal(t, "山田 太郎", eng.gotInput.StudentName)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty slot id", func(r *Request) { r.SlotID = "  " }},
		{"empty student name", func(r *Request) { r.StudentName = "" }},
		{"student name too long", func(r *Request) { r.StudentName = strings.Repeat("a", domain.MaxNameLength+1) }},
		{"empty guardian name", func(r *Request) { r.GuardianName = "   " }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"malformed email", func(r *Request) { r.Email = "not-an-email" }},
		{"email too long", func(r *Request) { r.Email = strings.Repeat("a", domain.MaxEmailLength) + "@x.jp" }},
		{"memo too long", func(r *Request) { r.Memo = strings.Repeat("m", domain.MaxMemoLength+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := &mockEngine{}
			uc := NewUseCase(eng, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// Движок не вызывается при невалидном запросе
			assert.Empty(t, eng.gotSlot)
		})
	}
}

func TestUseCase_Execute_EmptyMemoAllowed(t *testing.T) {
	uc := NewUseCase(&mockEngine{}, nopLogger{})

	req := validRequest()
	req.Memo = ""

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_EngineErrors(t *testing.T) {
	tests := []struct {
		name      string
		engineErr error
		wantErr   error
	}{
		{"slot not found", engine.ErrSlotNotFound, ErrSlotNotFound},
		{"already reserved", engine.ErrSlotAlreadyReserved, ErrSlotAlreadyReserved},
		{"persistence failure", engine.ErrPersistence, ErrPersistence},
		{"unknown failure", assert.AnError, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&mockEngine{bookErr: tt.engineErr}, nopLogger{})

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
