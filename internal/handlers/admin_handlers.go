package handlers

import (
	"net/http"

	"restaurant_backend/internal/services"
	"restaurant_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler holds the admin service.
type AdminHandler struct {
	adminService services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: as}
}

// GetStatistics returns the raw count of every collection for the dashboard.
func (h *AdminHandler) GetStatistics(c *gin.Context) {
	stats, err := h.adminService.GetStatistics()
	if err != nil {
		utils.LogError(err, "GetStatistics: Error from adminService.GetStatistics")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch statistics."))
		return
	}
	utils.RespondSuccess(c, http.StatusOK, stats)
}
