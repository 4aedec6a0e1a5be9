package handler

import (
	"net/http"

	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStatistics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard statistics", err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}
