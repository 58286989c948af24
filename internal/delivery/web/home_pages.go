package web

import "net/http"

// Home serves the landing page
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", nil)
}

// Dashboard serves the aggregate counts, bed occupancy, stock chart data and
// total revenue, all recomputed on every request.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		h.redirectWithNotice(w, r, "/", "Dashboard is temporarily unavailable")
		return
	}

	h.render(w, r, "dashboard.html", stats)
}
