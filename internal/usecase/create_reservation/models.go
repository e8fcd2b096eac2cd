package create_reservation

// Request модель запроса на бронирование слота
type Request struct {
	SlotID       string // ID слота
	StudentName  string // Имя ученика (обязательное)
	GuardianName string // Имя гардиана (обязательное)
	Email        string // Email для подтверждения (обязательное)
	Memo         string // Текст обращения к учителю (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string // ID созданного бронирования
	SlotID       string // ID забронированного слота
	StudentName  string
	GuardianName string
	Email        string
	Memo         string
}
