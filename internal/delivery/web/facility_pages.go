package web

import (
	"errors"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
)

// BedsPage lists all beds with their availability
func (h *Handler) BedsPage(w http.ResponseWriter, r *http.Request) {
	beds, err := h.facilityUsecase.GetAllBeds(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Could not load beds")
		return
	}

	h.render(w, r, "beds.html", beds)
}

// AddBedPage serves the bed form
func (h *Handler) AddBedPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "bed_form.html", nil)
}

// AddBed creates a bed from the posted form; new beds start available
func (h *Handler) AddBed(w http.ResponseWriter, r *http.Request) {
	roomNo := r.PostFormValue("room_no")
	bedType := r.PostFormValue("bed_type")
	if roomNo == "" || bedType == "" {
		h.redirectWithNotice(w, r, "/add_bed", "Room number and bed type are required")
		return
	}

	req := &dto.CreateBedRequest{
		RoomNo:  roomNo,
		BedType: bedType,
	}

	if _, err := h.facilityUsecase.CreateBed(r.Context(), req); err != nil {
		h.redirectWithNotice(w, r, "/add_bed", "Could not add bed")
		return
	}

	http.Redirect(w, r, "/beds", http.StatusSeeOther)
}

// AssignBed occupies a bed for a patient. An occupied bed rejects the
// assignment with a notice.
func (h *Handler) AssignBed(w http.ResponseWriter, r *http.Request) {
	bedID, err := formInt(r, "bed_id")
	if err != nil {
		h.redirectWithNotice(w, r, "/beds", "Bed id must be a number")
		return
	}

	patientID, err := formInt(r, "patient_id")
	if err != nil {
		h.redirectWithNotice(w, r, "/beds", "Patient id must be a number")
		return
	}

	if _, err := h.facilityUsecase.AssignBed(r.Context(), bedID, patientID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBedNotFound):
			h.redirectWithNotice(w, r, "/beds", "Bed not found")
		case errors.Is(err, usecase.ErrBedUnavailable):
			h.redirectWithNotice(w, r, "/beds", "Bed is not available")
		default:
			h.redirectWithNotice(w, r, "/beds", "Could not assign bed")
		}
		return
	}

	http.Redirect(w, r, "/beds", http.StatusSeeOther)
}

// ReleaseBed resets a bed to available, whatever its prior state
func (h *Handler) ReleaseBed(w http.ResponseWriter, r *http.Request) {
	bedID, err := pathInt(r, "id")
	if err != nil {
		h.redirectWithNotice(w, r, "/beds", "Invalid bed id")
		return
	}

	if _, err := h.facilityUsecase.ReleaseBed(r.Context(), bedID); err != nil {
		if errors.Is(err, usecase.ErrBedNotFound) {
			h.redirectWithNotice(w, r, "/beds", "Bed not found")
		} else {
			h.redirectWithNotice(w, r, "/beds", "Could not release bed")
		}
		return
	}

	http.Redirect(w, r, "/beds", http.StatusSeeOther)
}
