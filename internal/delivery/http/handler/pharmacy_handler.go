package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type PharmacyHandler struct {
	pharmacyUsecase usecase.PharmacyUsecase
	validator       *validator.CustomValidator
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUsecase, validator *validator.CustomValidator) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUsecase: pharmacyUsecase,
		validator:       validator,
	}
}

// CreateMedicine handles adding a medicine to stock
// @Summary Add a medicine
// @Tags Pharmacy
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicineRequest true "Create Medicine Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medicines [post]
func (h *PharmacyHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.pharmacyUsecase.CreateMedicine(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidQuantity:
			response.Error(w, http.StatusBadRequest, "Quantity and price must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to create medicine")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

// GetAllMedicines handles listing pharmacy stock
// @Summary Get all medicines
// @Tags Pharmacy
// @Produce json
// @Success 200 {object} response.Response
// @Router /medicines [get]
func (h *PharmacyHandler) GetAllMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.pharmacyUsecase.GetAllMedicines(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

// Purchase handles buying medicine stock. Insufficient stock rejects the
// purchase and writes no bill.
// @Summary Purchase medicine
// @Tags Pharmacy
// @Accept json
// @Produce json
// @Param id path int true "Medicine ID"
// @Param request body dto.PurchaseMedicineRequest true "Purchase Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /medicines/{id}/purchase [post]
func (h *PharmacyHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	medicineID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	var req dto.PurchaseMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.pharmacyUsecase.Purchase(r.Context(), medicineID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		case usecase.ErrInvalidQuantity:
			response.Error(w, http.StatusBadRequest, "Quantity must be positive", nil)
		case usecase.ErrInsufficientStock:
			response.UnprocessableEntity(w, "Insufficient stock")
		default:
			response.InternalServerError(w, "Failed to purchase medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine purchased successfully", result)
}
