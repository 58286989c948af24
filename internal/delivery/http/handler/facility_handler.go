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

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
	validator       *validator.CustomValidator
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase, validator *validator.CustomValidator) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase: facilityUsecase,
		validator:       validator,
	}
}

// CreateBed handles bed creation
func (h *FacilityHandler) CreateBed(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.facilityUsecase.CreateBed(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create bed")
		return
	}

	response.Success(w, http.StatusCreated, "Bed created successfully", bed)
}

// GetAllBeds handles listing all beds
func (h *FacilityHandler) GetAllBeds(w http.ResponseWriter, r *http.Request) {
	beds, err := h.facilityUsecase.GetAllBeds(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get beds")
		return
	}

	response.Success(w, http.StatusOK, "Beds retrieved successfully", beds)
}

// AssignBed handles assigning a bed to a patient. An occupied bed rejects the
// assignment.
func (h *FacilityHandler) AssignBed(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bedID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	var req dto.AssignBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.facilityUsecase.AssignBed(r.Context(), bedID, req.PatientID)
	if err != nil {
		switch err {
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		case usecase.ErrBedUnavailable:
			response.UnprocessableEntity(w, "Bed is not available")
		default:
			response.InternalServerError(w, "Failed to assign bed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bed assigned successfully", bed)
}

// ReleaseBed handles releasing a bed back to available. Releasing an
// already-available bed succeeds unchanged.
func (h *FacilityHandler) ReleaseBed(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bedID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	bed, err := h.facilityUsecase.ReleaseBed(r.Context(), bedID)
	if err != nil {
		switch err {
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		default:
			response.InternalServerError(w, "Failed to release bed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bed released successfully", bed)
}
