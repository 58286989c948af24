package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type NurseHandler struct {
	nurseUsecase usecase.NurseUsecase
	validator    *validator.CustomValidator
}

func NewNurseHandler(nurseUsecase usecase.NurseUsecase, validator *validator.CustomValidator) *NurseHandler {
	return &NurseHandler{
		nurseUsecase: nurseUsecase,
		validator:    validator,
	}
}

// Create handles nurse creation
func (h *NurseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNurseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	nurse, err := h.nurseUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create nurse")
		return
	}

	response.Success(w, http.StatusCreated, "Nurse created successfully", nurse)
}

// GetAll handles listing all nurses
func (h *NurseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	nurses, err := h.nurseUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get nurses")
		return
	}

	response.Success(w, http.StatusOK, "Nurses retrieved successfully", nurses)
}
