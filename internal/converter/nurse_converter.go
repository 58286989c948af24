package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// NurseToResponse converts a Nurse entity to NurseResponse DTO
func NurseToResponse(nurse *entity.Nurse) *dto.NurseResponse {
	if nurse == nil {
		return nil
	}

	return &dto.NurseResponse{
		ID:         nurse.ID,
		Name:       nurse.Name,
		AssignedTo: nurse.AssignedTo,
		Shift:      nurse.Shift,
		CreatedAt:  nurse.CreatedAt,
	}
}

// NursesToResponses converts a slice of Nurse entities to response DTOs
func NursesToResponses(nurses []entity.Nurse) []dto.NurseResponse {
	responses := make([]dto.NurseResponse, 0, len(nurses))
	for i := range nurses {
		responses = append(responses, *NurseToResponse(&nurses[i]))
	}
	return responses
}
