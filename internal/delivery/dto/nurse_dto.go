package dto

import "time"

// Request DTOs

type CreateNurseRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	AssignedTo *int   `json:"assigned_to"`
	Shift      string `json:"shift" validate:"required,oneof=morning evening night"`
}

// Response DTOs

type NurseResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	AssignedTo *int      `json:"assigned_to,omitempty"`
	Shift      string    `json:"shift"`
	CreatedAt  time.Time `json:"created_at"`
}

type NurseListResponse struct {
	Nurses []NurseResponse `json:"nurses"`
	Total  int             `json:"total"`
}
