package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/repositories"
)

// --- Custom Service Errors for menu items ---
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// --- Menu item DTOs ---

type MenuItemTagRequest struct {
	Label string  `json:"label" binding:"required"`
	Color *string `json:"color"`
}

type CreateMenuItemRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description *string              `json:"description"`
	Price       float64              `json:"price" binding:"required"`
	CategoryID  int64                `json:"category_id" binding:"required"`
	Tags        []MenuItemTagRequest `json:"tags"`
	IsAvailable *bool                `json:"is_available"` // Defaults to true when omitted
	Featured    bool                 `json:"featured"`
	Badge       *string              `json:"badge"`
	Image       *string              `json:"image"`
}

type UpdateMenuItemRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Price       *float64              `json:"price"`
	CategoryID  *int64                `json:"category_id"`
	Tags        *[]MenuItemTagRequest `json:"tags"`
	IsAvailable *bool                 `json:"is_available"`
	Featured    *bool                 `json:"featured"`
	Badge       *string               `json:"badge"`
	Image       *string               `json:"image"`
}

// --- MenuService Interface ---
type MenuService interface {
	CreateMenuItem(req CreateMenuItemRequest) (*models.MenuItem, error)
	GetMenuItemByID(itemID int64) (*models.MenuItem, error)
	GetMenuItems(filters models.MenuItemFilters) ([]models.MenuItem, int, error)
	UpdateMenuItem(itemID int64, req UpdateMenuItemRequest) (*models.MenuItem, error)
	DeleteMenuItem(itemID int64) error
}

// --- menuService Implementation ---
type menuService struct {
	menuRepo     repositories.MenuRepository
	categoryRepo repositories.CategoryRepository
	db           *sql.DB
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(mr repositories.MenuRepository, cr repositories.CategoryRepository, db *sql.DB) MenuService {
	return &menuService{
		menuRepo:     mr,
		categoryRepo: cr,
		db:           db,
	}
}

func toTagModels(reqs []MenuItemTagRequest) ([]models.MenuItemTag, error) {
	tags := make([]models.MenuItemTag, 0, len(reqs))
	for _, t := range reqs {
		if strings.TrimSpace(t.Label) == "" {
			return nil, fmt.Errorf("%w: tag label cannot be empty", ErrValidation)
		}
		tags = append(tags, models.MenuItemTag{Label: strings.TrimSpace(t.Label), Color: t.Color})
	}
	return tags, nil
}

func (s *menuService) CreateMenuItem(req CreateMenuItemRequest) (*models.MenuItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	// The category must exist at creation time. It is not re-validated
	// afterwards; deleting the category later leaves a dangling reference.
	if _, err := s.categoryRepo.GetCategoryByID(req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: category ID %d does not exist", ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate category for menu item: %w", err)
	}

	tags, err := toTagModels(req.Tags)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := &models.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		IsAvailable: isAvailable,
		Featured:    req.Featured,
		Badge:       req.Badge,
		Image:       req.Image,
		Tags:        tags,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := s.menuRepo.CreateMenuItem(tx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit menu item creation: %w", err)
	}

	return s.menuRepo.GetMenuItemByID(id)
}

func (s *menuService) GetMenuItemByID(itemID int64) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetMenuItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item by ID: %w", err)
	}
	return item, nil
}

func (s *menuService) GetMenuItems(filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 10
	}
	// Availability filter defaults to true unless the caller overrides it.
	if filters.Available == nil {
		available := true
		filters.Available = &available
	}

	items, totalCount, err := s.menuRepo.GetMenuItems(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, totalCount, nil
}

func (s *menuService) UpdateMenuItem(itemID int64, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetMenuItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to find menu item for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: item name cannot be empty if provided", ErrValidation)
		}
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		item.Price = *req.Price
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Badge != nil {
		item.Badge = req.Badge
	}
	if req.Image != nil {
		item.Image = req.Image
	}

	var newTags []models.MenuItemTag
	if req.Tags != nil {
		newTags, err = toTagModels(*req.Tags)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.menuRepo.UpdateMenuItem(tx, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	if req.Tags != nil {
		if err := s.menuRepo.ReplaceTags(tx, itemID, newTags); err != nil {
			return nil, fmt.Errorf("failed to update menu item tags: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit menu item update: %w", err)
	}

	return s.menuRepo.GetMenuItemByID(itemID)
}

func (s *menuService) DeleteMenuItem(itemID int64) error {
	err := s.menuRepo.DeleteMenuItem(s.db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMenuItemNotFound
		}
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
