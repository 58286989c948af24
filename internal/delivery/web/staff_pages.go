package web

import (
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// DoctorsPage lists all doctors
func (h *Handler) DoctorsPage(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAll(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load doctors")
		return
	}

	h.render(w, r, "doctors.html", doctors)
}

// AddDoctorPage serves the doctor form
func (h *Handler) AddDoctorPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "doctor_form.html", nil)
}

// AddDoctor creates a doctor from the posted form
func (h *Handler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	specialization := r.PostFormValue("specialization")
	if name == "" || specialization == "" {
		h.redirectWithNotice(w, r, "/add_doctor", "Name and specialization are required")
		return
	}

	req := &dto.CreateDoctorRequest{
		Name:           name,
		Specialization: specialization,
		Phone:          r.PostFormValue("phone"),
		Email:          r.PostFormValue("email"),
	}

	if _, err := h.doctorUsecase.Create(r.Context(), req); err != nil {
		h.redirectWithNotice(w, r, "/add_doctor", "Could not add doctor")
		return
	}

	http.Redirect(w, r, "/doctors", http.StatusSeeOther)
}

// DeleteDoctor removes a doctor. An unknown id is a silent no-op.
func (h *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.redirectWithNotice(w, r, "/doctors", "Invalid doctor id")
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		h.redirectWithNotice(w, r, "/doctors", "Could not delete doctor")
		return
	}

	http.Redirect(w, r, "/doctors", http.StatusSeeOther)
}

// NursesPage lists all nurses
func (h *Handler) NursesPage(w http.ResponseWriter, r *http.Request) {
	nurses, err := h.nurseUsecase.GetAll(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load nurses")
		return
	}

	h.render(w, r, "nurses.html", nurses)
}

// AddNursePage serves the nurse form
func (h *Handler) AddNursePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "nurse_form.html", nil)
}

// AddNurse creates a nurse from the posted form. The doctor assignment is
// optional and kept as a weak reference.
func (h *Handler) AddNurse(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	shift := r.PostFormValue("shift")
	if name == "" || shift == "" {
		h.redirectWithNotice(w, r, "/add_nurse", "Name and shift are required")
		return
	}
	switch shift {
	case entity.ShiftMorning, entity.ShiftEvening, entity.ShiftNight:
	default:
		h.redirectWithNotice(w, r, "/add_nurse", "Shift must be morning, evening or night")
		return
	}

	var assignedTo *int
	if raw := r.PostFormValue("assigned_to"); raw != "" {
		doctorID, err := strconv.Atoi(raw)
		if err != nil {
			h.redirectWithNotice(w, r, "/add_nurse", "Assigned doctor must be a number")
			return
		}
		assignedTo = &doctorID
	}

	req := &dto.CreateNurseRequest{
		Name:       name,
		AssignedTo: assignedTo,
		Shift:      shift,
	}

	if _, err := h.nurseUsecase.Create(r.Context(), req); err != nil {
		h.redirectWithNotice(w, r, "/add_nurse", "Could not add nurse")
		return
	}

	http.Redirect(w, r, "/nurses", http.StatusSeeOther)
}
