package entity

import "time"

// Nurse represents a nurse on staff.
// AssignedTo is a weak reference to a doctor id; referential integrity is not
// enforced and a dangling reference is tolerated.
type Nurse struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	AssignedTo *int      `gorm:"index" json:"assigned_to,omitempty"`
	Shift      string    `gorm:"type:varchar(20);not null" json:"shift"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Nurse) TableName() string {
	return "nurses"
}

// Shift constants
const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)
