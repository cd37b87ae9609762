package models

// DayAvailability carries the per-day slot counters the calendar UI renders.
type DayAvailability struct {
	Date           string `json:"date"` // "2006-01-02"
	TotalSlots     int    `json:"totalSlots"`
	AvailableSlots int    `json:"availableSlots"` // active slots with no active booking
	BookedSlots    int    `json:"bookedSlots"`
}

// MonthAvailability summarizes one calendar month for a teacher. Month is
// 1-indexed (January = 1). Days covers every day of the month, including days
// without slots; DaysWithAvailability lists only the dates with at least one
// active, unbooked slot. Year and Month echo the query for cache keying.
type MonthAvailability struct {
	TeacherID            string            `json:"teacherId"`
	Year                 int               `json:"year"`
	Month                int               `json:"month"`
	Days                 []DayAvailability `json:"days"`
	DaysWithAvailability []string          `json:"daysWithAvailability"`
}
