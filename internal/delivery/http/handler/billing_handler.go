package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

// Create handles bill creation from explicit line pairs
func (h *BillingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.CreateBill(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmptyBill:
			response.UnprocessableEntity(w, "Bill has no line items")
		case usecase.ErrNegativeAmount:
			response.Error(w, http.StatusBadRequest, "Line amounts must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to create bill")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Bill created successfully", bill)
}

// GetAll handles listing all bills
func (h *BillingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingUsecase.GetAllBills(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}
