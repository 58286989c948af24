package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// BedToResponse converts a Bed entity to BedResponse DTO
func BedToResponse(bed *entity.Bed) *dto.BedResponse {
	if bed == nil {
		return nil
	}

	return &dto.BedResponse{
		ID:           bed.ID,
		RoomNo:       bed.RoomNo,
		BedType:      bed.BedType,
		Availability: string(bed.Availability),
		PatientID:    bed.PatientID,
		CreatedAt:    bed.CreatedAt,
		UpdatedAt:    bed.UpdatedAt,
	}
}

// BedsToResponses converts a slice of Bed entities to response DTOs
func BedsToResponses(beds []entity.Bed) []dto.BedResponse {
	responses := make([]dto.BedResponse, 0, len(beds))
	for i := range beds {
		responses = append(responses, *BedToResponse(&beds[i]))
	}
	return responses
}
