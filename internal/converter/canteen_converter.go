package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// CanteenItemToResponse converts a CanteenItem entity to its response DTO
func CanteenItemToResponse(item *entity.CanteenItem) *dto.CanteenItemResponse {
	if item == nil {
		return nil
	}

	return &dto.CanteenItemResponse{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
	}
}

// CanteenItemsToResponses converts a slice of CanteenItem entities to DTOs
func CanteenItemsToResponses(items []entity.CanteenItem) []dto.CanteenItemResponse {
	responses := make([]dto.CanteenItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *CanteenItemToResponse(&items[i]))
	}
	return responses
}

// OrderToResponse converts a CanteenOrder entity to OrderResponse DTO
func OrderToResponse(order *entity.CanteenOrder) *dto.OrderResponse {
	if order == nil {
		return nil
	}

	lines := make([]dto.OrderLineResponse, 0, len(order.Items))
	for _, line := range order.Items {
		lines = append(lines, dto.OrderLineResponse{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Qty:      line.Qty,
			Price:    line.Price,
			Subtotal: line.Subtotal,
		})
	}

	return &dto.OrderResponse{
		ID:        order.ID,
		OrderCode: order.OrderCode,
		PatientID: order.PatientID,
		Items:     lines,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

// OrdersToResponses converts a slice of CanteenOrder entities to DTOs
func OrdersToResponses(orders []entity.CanteenOrder) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *OrderToResponse(&orders[i]))
	}
	return responses
}
