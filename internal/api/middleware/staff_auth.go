package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/harutok/SchoolReserve-Service/internal/api/handlers"
)

// HeaderStaffCode заголовок с общим кодом доступа персонала
const HeaderStaffCode = "X-Staff-Code"

const msgStaffCodeRequired = "教職員用アクセスコードが必要です"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// StaffAuth проверяет общий код доступа персонала.
// Это демонстрационный барьер, а не средство защиты: один общий секрет,
// без блокировок, rate-limiting и истечения сессий.
func StaffAuth(accessCode string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderStaffCode)
			if provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(accessCode)) != 1 {
				log.Warn("StaffAuth: rejected request %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgStaffCodeRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
