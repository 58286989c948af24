package web

import (
	"net/http"

	"go-hospital-management/internal/delivery/dto"
)

// PatientsPage lists all registered patients
func (h *Handler) PatientsPage(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load patients")
		return
	}

	h.render(w, r, "patients.html", patients)
}

// AddPatientPage serves the registration form
func (h *Handler) AddPatientPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "patient_form.html", nil)
}

// AddPatient registers a patient from the posted form
func (h *Handler) AddPatient(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	gender := r.PostFormValue("gender")
	if name == "" || gender == "" {
		h.redirectWithNotice(w, r, "/add_patient", "Name and gender are required")
		return
	}

	age, err := formInt(r, "age")
	if err != nil || age < 0 {
		h.redirectWithNotice(w, r, "/add_patient", "Age must be a non-negative number")
		return
	}

	req := &dto.CreatePatientRequest{
		Name:    name,
		Age:     age,
		Gender:  gender,
		Phone:   r.PostFormValue("phone"),
		Address: r.PostFormValue("address"),
		Disease: r.PostFormValue("disease"),
	}

	if _, err := h.patientUsecase.Register(r.Context(), req); err != nil {
		h.redirectWithNotice(w, r, "/add_patient", "Could not register patient")
		return
	}

	http.Redirect(w, r, "/patients", http.StatusSeeOther)
}

// DeletePatient removes a patient. An unknown id is a silent no-op.
func (h *Handler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.redirectWithNotice(w, r, "/patients", "Invalid patient id")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		h.redirectWithNotice(w, r, "/patients", "Could not delete patient")
		return
	}

	http.Redirect(w, r, "/patients", http.StatusSeeOther)
}
