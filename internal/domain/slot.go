package domain

import "github.com/harutok/SchoolReserve-Service/pkg/types"

// TimeSlot represents one bookable interview interval.
//
// StartTime and EndTime are wall-clock "HH:MM" strings; the engine does not
// check that StartTime < EndTime and overlapping slots for the same teacher
// are permitted (known gap, kept from the original system).
type TimeSlot struct {
	ID         string           `json:"id"`
	TeacherID  string           `json:"teacherId"`
	Date       string           `json:"date"` // ISO 8601 date, "2006-01-02"
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	IsReserved bool             `json:"isReserved"`
}

// Clone returns an independent copy of the slot.
func (s *TimeSlot) Clone() *TimeSlot {
	c := *s
	return &c
}
