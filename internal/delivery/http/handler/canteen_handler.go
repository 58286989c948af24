package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type CanteenHandler struct {
	canteenUsecase usecase.CanteenUsecase
	validator      *validator.CustomValidator
}

func NewCanteenHandler(canteenUsecase usecase.CanteenUsecase, validator *validator.CustomValidator) *CanteenHandler {
	return &CanteenHandler{
		canteenUsecase: canteenUsecase,
		validator:      validator,
	}
}

// CreateItem handles adding a canteen menu item
func (h *CanteenHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCanteenItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.canteenUsecase.CreateItem(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create canteen item")
		return
	}

	response.Success(w, http.StatusCreated, "Canteen item created successfully", item)
}

// GetAllItems handles listing the canteen menu
func (h *CanteenHandler) GetAllItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.canteenUsecase.GetAllItems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get canteen items")
		return
	}

	response.Success(w, http.StatusOK, "Canteen items retrieved successfully", items)
}

// PlaceOrder handles placing a food order. An order with no positive-quantity
// line is rejected and nothing is written.
func (h *CanteenHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.canteenUsecase.PlaceOrder(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCanteenItemNotFound:
			response.NotFound(w, "Canteen item not found")
		case usecase.ErrEmptyOrder:
			response.UnprocessableEntity(w, "Order has no items")
		default:
			response.InternalServerError(w, "Failed to place order")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Order placed successfully", order)
}

// GetAllOrders handles listing placed orders
func (h *CanteenHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.canteenUsecase.GetAllOrders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}
