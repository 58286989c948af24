package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Age     int    `json:"age" validate:"gte=0,lte=150"`
	Gender  string `json:"gender" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Disease string `json:"disease"`
}

// Response DTOs

type PatientResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Disease   string    `json:"disease,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
