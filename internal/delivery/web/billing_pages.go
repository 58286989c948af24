package web

import (
	"errors"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"

	"github.com/shopspring/decimal"
)

// BillingPage serves the bill form
func (h *Handler) BillingPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "billing_form.html", nil)
}

// CreateBill assembles a bill from the posted form. The form posts parallel
// description/amount value lists; rows left blank are skipped.
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithNotice(w, r, "/billing", "Invalid billing form")
		return
	}

	patientID, err := formInt(r, "patient_id")
	if err != nil {
		h.redirectWithNotice(w, r, "/billing", "Patient id must be a number")
		return
	}

	descriptions := r.PostForm["description"]
	amounts := r.PostForm["amount"]
	if len(descriptions) != len(amounts) {
		h.redirectWithNotice(w, r, "/billing", "Invalid billing form")
		return
	}

	lines := make([]dto.BillLineRequest, 0, len(descriptions))
	for i := range descriptions {
		if descriptions[i] == "" && amounts[i] == "" {
			continue
		}

		amount, err := decimal.NewFromString(amounts[i])
		if err != nil {
			h.redirectWithNotice(w, r, "/billing", "Amounts must be numbers")
			return
		}

		lines = append(lines, dto.BillLineRequest{
			Description: descriptions[i],
			Amount:      amount,
		})
	}

	req := &dto.CreateBillRequest{
		PatientID: patientID,
		Lines:     lines,
	}

	if _, err := h.billingUsecase.CreateBill(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyBill):
			h.redirectWithNotice(w, r, "/billing", "Add at least one line item")
		case errors.Is(err, usecase.ErrNegativeAmount):
			h.redirectWithNotice(w, r, "/billing", "Amounts must not be negative")
		default:
			h.redirectWithNotice(w, r, "/billing", "Could not create bill")
		}
		return
	}

	http.Redirect(w, r, "/bills", http.StatusSeeOther)
}

// BillsPage lists all bills
func (h *Handler) BillsPage(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingUsecase.GetAllBills(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load bills")
		return
	}

	h.render(w, r, "bills.html", bills)
}
