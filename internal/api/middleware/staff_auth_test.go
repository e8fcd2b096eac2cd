package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func doStaffRequest(t *testing.T, code string) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/staff/reservations", nil)
	if code != "" {
		req.Header.Set(HeaderStaffCode, code)
	}
	rec := httptest.NewRecorder()

	StaffAuth("admin123", nopLogger{})(next).ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		assert.True(t, called)
	} else {
		assert.False(t, called)
	}
	return rec
}

func TestStaffAuth(t *testing.T) {
	assert.Equal(t, http.StatusOK, doStaffRequest(t, "admin123").Code)
	assert.Equal(t, http.StatusUnauthorized, doStaffRequest(t, "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, doStaffRequest(t, "").Code)
}
