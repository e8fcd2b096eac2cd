package domain

// SeedTeachers returns the fixed teacher roster. The list is the only source
// of teachers in the system.
func SeedTeachers() []*Teacher {
	return []*Teacher{
		{ID: "t1", Name: "佐藤 健一", Subject: "算数・数学"},
		{ID: "t2", Name: "鈴木 美香", Subject: "国語"},
		{ID: "t3", Name: "高橋 浩", Subject: "理科"},
		{ID: "t4", Name: "田中 恵", Subject: "社会"},
	}
}

// SeedSlots returns the bootstrap slot set used when no persisted state
// exists. Slot s2 is seeded already reserved without a matching reservation,
// which the staff view must render as an unknown booker.
func SeedSlots() []*TimeSlot {
	return []*TimeSlot{
		{ID: "s1", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:00", EndTime: "15:20", IsReserved: false},
		{ID: "s2", TeacherID: "t1", Date: "2024-12-10", StartTime: "15:30", EndTime: "15:50", IsReserved: true},
		{ID: "s3", TeacherID: "t1", Date: "2024-12-10", StartTime: "16:00", EndTime: "16:20", IsReserved: false},
		{ID: "s4", TeacherID: "t2", Date: "2024-12-11", StartTime: "14:00", EndTime: "14:20", IsReserved: false},
		{ID: "s5", TeacherID: "t2", Date: "2024-12-11", StartTime: "14:30", EndTime: "14:50", IsReserved: false},
	}
}
