package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/repositories"
)

// --- Custom Service Errors for the catalog ---
var (
	ErrValidation         = errors.New("validation error")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
)

// --- Category DTOs ---
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"` // Pointer to distinguish between empty and not provided
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// --- CategoryService Interface ---
type CategoryService interface {
	CreateCategory(req CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(categoryID int64) (*models.Category, error)
	GetCategories(page, limit int) ([]models.Category, int, error)
	GetCategoriesWithItems() ([]models.CategoryWithItems, error)
	UpdateCategory(categoryID int64, req UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(categoryID int64) error
}

// --- categoryService Implementation ---
type categoryService struct {
	categoryRepo repositories.CategoryRepository
	menuRepo     repositories.MenuRepository
	db           *sql.DB
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(cr repositories.CategoryRepository, mr repositories.MenuRepository, db *sql.DB) CategoryService {
	return &categoryService{
		categoryRepo: cr,
		menuRepo:     mr,
		db:           db,
	}
}

func (s *categoryService) CreateCategory(req CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}
	category := &models.Category{
		Name:        name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	id, err := s.categoryRepo.CreateCategory(s.db, category)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: '%s'", ErrCategoryNameExists, name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return s.categoryRepo.GetCategoryByID(id)
}

func (s *categoryService) GetCategoryByID(categoryID int64) (*models.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetCategories(page, limit int) ([]models.Category, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	categories, totalCount, err := s.categoryRepo.GetCategories(page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, totalCount, nil
}

func (s *categoryService) GetCategoriesWithItems() ([]models.CategoryWithItems, error) {
	categories, _, err := s.categoryRepo.GetCategories(1, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	result := make([]models.CategoryWithItems, 0, len(categories))
	for _, category := range categories {
		items, err := s.menuRepo.GetAvailableByCategory(category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get items for category %d: %w", category.ID, err)
		}
		result = append(result, models.CategoryWithItems{Category: category, Items: items})
	}
	return result, nil
}

func (s *categoryService) UpdateCategory(categoryID int64, req UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category name cannot be empty if provided", ErrValidation)
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Icon != nil {
		category.Icon = req.Icon
	}

	err = s.categoryRepo.UpdateCategory(s.db, category)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: '%s'", ErrCategoryNameExists, category.Name)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return s.categoryRepo.GetCategoryByID(categoryID)
}

func (s *categoryService) DeleteCategory(categoryID int64) error {
	// Menu items referencing this category keep their reference; dangling
	// references are tolerated.
	err := s.categoryRepo.DeleteCategory(s.db, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
