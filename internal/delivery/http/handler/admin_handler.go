package handler

import (
	"net/http"

	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ResetDemo handles wiping every table for a fresh demo dataset
func (h *AdminHandler) ResetDemo(w http.ResponseWriter, r *http.Request) {
	if err := h.adminUsecase.ResetDemo(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to reset demo data")
		return
	}

	response.Success(w, http.StatusOK, "Demo data reset successfully", nil)
}
