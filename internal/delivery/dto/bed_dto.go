package dto

import "time"

// Request DTOs

type CreateBedRequest struct {
	RoomNo  string `json:"room_no" validate:"required"`
	BedType string `json:"bed_type" validate:"required"`
}

type AssignBedRequest struct {
	PatientID int `json:"patient_id" validate:"required,gt=0"`
}

// Response DTOs

type BedResponse struct {
	ID           int       `json:"id"`
	RoomNo       string    `json:"room_no"`
	BedType      string    `json:"bed_type"`
	Availability string    `json:"availability"`
	PatientID    *int      `json:"patient_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BedListResponse struct {
	Beds  []BedResponse `json:"beds"`
	Total int           `json:"total"`
}
