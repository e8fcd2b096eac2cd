package engine

// BookingDetails данные бронирования, передаваемые гардианом.
// Обязательность полей проверяется на уровне use case, до вызова движка.
type BookingDetails struct {
	StudentName  string
	GuardianName string
	Email        string
	Memo         string
}

// Названия операций для метрик
const (
	opBook       = "book"
	opAddSlot    = "add_slot"
	opRemoveSlot = "remove_slot"
)

// Результаты операций для метрик
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)
