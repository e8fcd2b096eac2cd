package domain

// Reservation represents one guardian's completed booking against a slot.
//
// A reservation is created atomically with the slot's IsReserved flip and is
// never mutated or deleted afterwards; the system has no cancellation flow.
type Reservation struct {
	ID           string `json:"id"`
	SlotID       string `json:"slotId"`
	StudentName  string `json:"studentName"`
	GuardianName string `json:"guardianName"`
	Email        string `json:"email"`
	Memo         string `json:"memo,omitempty"`
}

// Clone returns an independent copy of the reservation.
func (r *Reservation) Clone() *Reservation {
	c := *r
	return &c
}
