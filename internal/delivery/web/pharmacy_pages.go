package web

import (
	"errors"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"

	"github.com/shopspring/decimal"
)

// MedicinesPage lists pharmacy stock
func (h *Handler) MedicinesPage(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.pharmacyUsecase.GetAllMedicines(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load medicines")
		return
	}

	h.render(w, r, "medicines.html", medicines)
}

// AddMedicinePage serves the medicine form
func (h *Handler) AddMedicinePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "medicine_form.html", nil)
}

// AddMedicine adds a medicine to stock from the posted form
func (h *Handler) AddMedicine(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	if name == "" {
		h.redirectWithNotice(w, r, "/add_medicine", "Name is required")
		return
	}

	quantity, err := formInt(r, "quantity")
	if err != nil || quantity < 0 {
		h.redirectWithNotice(w, r, "/add_medicine", "Quantity must be a non-negative number")
		return
	}

	price, err := decimal.NewFromString(r.PostFormValue("price"))
	if err != nil || price.IsNegative() {
		h.redirectWithNotice(w, r, "/add_medicine", "Price must be a non-negative number")
		return
	}

	req := &dto.CreateMedicineRequest{
		Name:     name,
		Quantity: quantity,
		Price:    price,
	}

	if _, err := h.pharmacyUsecase.CreateMedicine(r.Context(), req); err != nil {
		h.redirectWithNotice(w, r, "/add_medicine", "Could not add medicine")
		return
	}

	http.Redirect(w, r, "/medicines", http.StatusSeeOther)
}

// BuyMedicine purchases stock for a patient. Overdrawing stock leaves it
// unchanged and flashes a rejection.
func (h *Handler) BuyMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := formInt(r, "med_id")
	if err != nil {
		h.redirectWithNotice(w, r, "/medicines", "Medicine id must be a number")
		return
	}

	patientID, err := formInt(r, "patient_id")
	if err != nil {
		h.redirectWithNotice(w, r, "/medicines", "Patient id must be a number")
		return
	}

	quantity, err := formInt(r, "quantity")
	if err != nil {
		h.redirectWithNotice(w, r, "/medicines", "Quantity must be a number")
		return
	}

	req := &dto.PurchaseMedicineRequest{
		PatientID: patientID,
		Quantity:  quantity,
	}

	if _, err := h.pharmacyUsecase.Purchase(r.Context(), medicineID, req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMedicineNotFound):
			h.redirectWithNotice(w, r, "/medicines", "Medicine not found")
		case errors.Is(err, usecase.ErrInvalidQuantity):
			h.redirectWithNotice(w, r, "/medicines", "Quantity must be positive")
		case errors.Is(err, usecase.ErrInsufficientStock):
			h.redirectWithNotice(w, r, "/medicines", "Insufficient stock")
		default:
			h.redirectWithNotice(w, r, "/medicines", "Could not purchase medicine")
		}
		return
	}

	http.Redirect(w, r, "/medicines", http.StatusSeeOther)
}
