package models

// ScheduleItem is one slot on the weekly fellowship programme.
// DayOfWeek follows time.Weekday numbering (Sunday = 0).
type ScheduleItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"not null" json:"start_time"` // "HH:MM", 24h
	EndTime   string `json:"end_time"`
	Title     string `gorm:"not null" json:"title"`
	Venue     string `json:"venue"`
}
