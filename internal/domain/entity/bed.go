package entity

import "time"

// BedAvailability represents the occupancy state of a bed
type BedAvailability string

const (
	BedAvailable BedAvailability = "available"
	BedOccupied  BedAvailability = "occupied"
)

// Bed represents a hospital bed.
// Invariant: PatientID is non-nil iff Availability == occupied.
type Bed struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNo       string          `gorm:"type:varchar(50);not null" json:"room_no"`
	BedType      string          `gorm:"type:varchar(50);not null" json:"bed_type"`
	Availability BedAvailability `gorm:"type:varchar(20);not null;default:'available';index" json:"availability"`
	PatientID    *int            `gorm:"index" json:"patient_id,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bed) TableName() string {
	return "beds"
}

// IsAvailable checks if the bed can be assigned
func (b *Bed) IsAvailable() bool {
	return b.Availability == BedAvailable
}
