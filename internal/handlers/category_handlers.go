package handlers

import (
	"errors"
	"net/http"

	"restaurant_backend/internal/services"
	"restaurant_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CategoryHandler holds the category service.
type CategoryHandler struct {
	categoryService services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: cs}
}

// CreateCategory handles the creation of a new category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		utils.LogError(err, "CreateCategory: Error from categoryService.CreateCategory")
		if errors.Is(err, services.ErrCategoryNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Category already exists."))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create category."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusCreated, "Category created successfully", category)
}

// GetCategories handles fetching all categories with pagination.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	page, limit := parsePagination(c)

	categories, total, err := h.categoryService.GetCategories(page, limit)
	if err != nil {
		utils.LogError(err, "GetCategories: Error from categoryService.GetCategories")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch categories."))
		return
	}
	utils.RespondList(c, categories, len(categories), total, page, limit)
}

// GetCategoriesWithItems handles the public menu view: every category with
// its available items.
func (h *CategoryHandler) GetCategoriesWithItems(c *gin.Context) {
	result, err := h.categoryService.GetCategoriesWithItems()
	if err != nil {
		utils.LogError(err, "GetCategoriesWithItems: Error from categoryService.GetCategoriesWithItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch categories."))
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

// GetCategoryByID handles fetching a single category by ID.
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid category ID format.")
		return
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		utils.LogError(err, "GetCategoryByID: Error from categoryService.GetCategoryByID")
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch category."))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, category)
}

// UpdateCategory handles updating an existing category.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid category ID format.")
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req)
	if err != nil {
		utils.LogError(err, "UpdateCategory: Error from categoryService.UpdateCategory")
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found."))
		} else if errors.Is(err, services.ErrCategoryNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Category name already exists."))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update category."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid category ID format.")
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		utils.LogError(err, "DeleteCategory: Error from categoryService.DeleteCategory")
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete category."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Category deleted successfully", nil)
}
