package create_reservation

import (
	"fmt"
	"strings"

	"github.com/harutok/SchoolReserve-Service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Срабатывает до любой мутации движка: невалидный запрос состояние не меняет.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StudentName) == "" {
		return fmt.Errorf("%w: studentName is required", ErrInvalidInput)
	}
	if len(req.StudentName) > domain.MaxNameLength {
		return fmt.Errorf("%w: studentName exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.GuardianName) == "" {
		return fmt.Errorf("%w: guardianName is required", ErrInvalidInput)
	}
	if len(req.GuardianName) > domain.MaxNameLength {
		return fmt.Errorf("%w: guardianName exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}

	if len(req.Memo) > domain.MaxMemoLength {
		return fmt.Errorf("%w: memo exceeds %d characters", ErrInvalidInput, domain.MaxMemoLength)
	}

	return nil
}
