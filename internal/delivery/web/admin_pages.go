package web

import "net/http"

// ResetDemo wipes every table so the demo can be reseeded
func (h *Handler) ResetDemo(w http.ResponseWriter, r *http.Request) {
	if err := h.adminUsecase.ResetDemo(r.Context()); err != nil {
		h.redirectWithNotice(w, r, "/", "Could not reset demo data")
		return
	}

	h.redirectWithNotice(w, r, "/", "Demo data has been reset")
}
