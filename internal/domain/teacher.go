package domain

// Teacher is an interview-slot owner. The roster is fixed at startup and
// never persisted; see SeedTeachers.
type Teacher struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}
