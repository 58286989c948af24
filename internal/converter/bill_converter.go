package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// BillToResponse converts a Bill entity to BillResponse DTO
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	lines := make([]dto.BillLineResponse, 0, len(bill.Items))
	for _, line := range bill.Items {
		lines = append(lines, dto.BillLineResponse{
			Description: line.Description,
			Amount:      line.Amount,
		})
	}

	return &dto.BillResponse{
		ID:          bill.ID,
		InvoiceCode: bill.InvoiceCode,
		PatientID:   bill.PatientID,
		Items:       lines,
		Total:       bill.Total,
		BilledAt:    bill.BilledAt,
	}
}

// BillsToResponses converts a slice of Bill entities to response DTOs
func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		responses = append(responses, *BillToResponse(&bills[i]))
	}
	return responses
}
