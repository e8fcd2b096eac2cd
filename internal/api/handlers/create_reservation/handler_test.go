package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/harutok/SchoolReserve-Service/internal/usecase/create_reservation"
)

type mockUseCase struct {
	err error
}

func (m *mockUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &createReservation.Response{
		ID:           "res-1",
		SlotID:       req.SlotID,
		StudentName:  req.StudentName,
		GuardianName: req.GuardianName,
		Email:        req.Email,
		Memo:         req.Memo,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}
func (nopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"slotId": "s3",
	"studentName": "山田 太郎",
	"guardianName": "山田 花子",
	"email": "yamada@example.com",
	"memo": "宿題について相談したい"
}`

func doRequest(ucErr error, body string) *httptest.ResponseRecorder {
	h := NewHandler(&mockUseCase{err: ucErr}, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	rec := doRequest(nil, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "s3", resp.SlotID)
	assert.Equal(t, "山田 太郎", resp.StudentName)
}

func TestHandler_MalformedBody(t *testing.T) {
	rec := doRequest(nil, `{"slotId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UseCaseErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createReservation.ErrInvalidInput, http.StatusBadRequest},
		{"slot not found", createReservation.ErrSlotNotFound, http.StatusNotFound},
		{"already reserved", createReservation.ErrSlotAlreadyReserved, http.StatusConflict},
		{"persistence failed", createReservation.ErrPersistence, http.StatusServiceUnavailable},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(tt.err, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
