package handlers

import (
	"errors"
	"net/http"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/services"
	"restaurant_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the menu service.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

// CreateMenuItem handles the creation of a new menu item.
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	item, err := h.menuService.CreateMenuItem(req)
	if err != nil {
		utils.LogError(err, "CreateMenuItem: Error from menuService.CreateMenuItem")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create menu item."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusCreated, "Menu item created successfully", item)
}

// GetMenuItems handles fetching menu items with filters and pagination.
func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	var filters models.MenuItemFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationFailed(c, "Invalid query parameters: "+err.Error())
		return
	}

	items, total, err := h.menuService.GetMenuItems(filters)
	if err != nil {
		utils.LogError(err, "GetMenuItems: Error from menuService.GetMenuItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu items."))
		return
	}

	page, limit := filters.Page, filters.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	utils.RespondList(c, items, len(items), total, page, limit)
}

// GetMenuItemByID handles fetching a single menu item by ID.
func (h *MenuHandler) GetMenuItemByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid menu item ID format.")
		return
	}

	item, err := h.menuService.GetMenuItemByID(id)
	if err != nil {
		utils.LogError(err, "GetMenuItemByID: Error from menuService.GetMenuItemByID")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu item."))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// UpdateMenuItem handles updating an existing menu item.
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid menu item ID format.")
		return
	}

	var req services.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	item, err := h.menuService.UpdateMenuItem(id, req)
	if err != nil {
		utils.LogError(err, "UpdateMenuItem: Error from menuService.UpdateMenuItem")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found."))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update menu item."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Menu item updated successfully", item)
}

// DeleteMenuItem handles deleting a menu item.
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid menu item ID format.")
		return
	}

	if err := h.menuService.DeleteMenuItem(id); err != nil {
		utils.LogError(err, "DeleteMenuItem: Error from menuService.DeleteMenuItem")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete menu item."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Menu item deleted successfully", nil)
}
