package services

import (
	"errors"
	"testing"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/repositories"
)

func TestCreateCategory(t *testing.T) {
	t.Run("trims the name", func(t *testing.T) {
		var stored models.Category
		repo := &fakeCategoryRepo{
			createFn: func(category *models.Category) (int64, error) {
				stored = *category
				stored.ID = 1
				return 1, nil
			},
			getByIDFn: func(id int64) (*models.Category, error) {
				c := stored
				return &c, nil
			},
		}
		svc := NewCategoryService(repo, &fakeMenuRepo{}, newTestDB(t))

		category, err := svc.CreateCategory(CreateCategoryRequest{Name: "  Desserts  "})
		if err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
		if category.Name != "Desserts" {
			t.Errorf("name = %q, want trimmed %q", category.Name, "Desserts")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc := NewCategoryService(&fakeCategoryRepo{}, &fakeMenuRepo{}, newTestDB(t))
		_, err := svc.CreateCategory(CreateCategoryRequest{Name: "   "})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("maps duplicate name to conflict", func(t *testing.T) {
		repo := &fakeCategoryRepo{
			createFn: func(category *models.Category) (int64, error) {
				return 0, repositories.ErrDuplicateKey
			},
		}
		svc := NewCategoryService(repo, &fakeMenuRepo{}, newTestDB(t))

		_, err := svc.CreateCategory(CreateCategoryRequest{Name: "Starters"})
		if !errors.Is(err, ErrCategoryNameExists) {
			t.Fatalf("expected ErrCategoryNameExists, got %v", err)
		}
	})
}

func TestUpdateCategoryDuplicateName(t *testing.T) {
	repo := &fakeCategoryRepo{
		getByIDFn: func(id int64) (*models.Category, error) {
			return &models.Category{ID: id, Name: "Starters"}, nil
		},
		updateFn: func(category *models.Category) error {
			return repositories.ErrDuplicateKey
		},
	}
	svc := NewCategoryService(repo, &fakeMenuRepo{}, newTestDB(t))

	_, err := svc.UpdateCategory(1, UpdateCategoryRequest{Name: strPtr("Mains")})
	if !errors.Is(err, ErrCategoryNameExists) {
		t.Fatalf("expected ErrCategoryNameExists, got %v", err)
	}
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{}, &fakeMenuRepo{}, newTestDB(t))
	_, err := svc.GetCategoryByID(7)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestGetCategoriesWithItems(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{
		listFn: func(page, limit int) ([]models.Category, int, error) {
			return []models.Category{
				{ID: 1, Name: "Starters"},
				{ID: 2, Name: "Mains"},
			}, 2, nil
		},
	}
	menuRepo := &fakeMenuRepo{
		availByCatFn: func(categoryID int64) ([]models.MenuItem, error) {
			if categoryID == 1 {
				return []models.MenuItem{{ID: 10, Name: "Soup", CategoryID: 1}}, nil
			}
			return nil, nil
		},
	}
	svc := NewCategoryService(categoryRepo, menuRepo, newTestDB(t))

	result, err := svc.GetCategoriesWithItems()
	if err != nil {
		t.Fatalf("GetCategoriesWithItems failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %d categories, want 2", len(result))
	}
	if len(result[0].Items) != 1 || result[0].Items[0].Name != "Soup" {
		t.Errorf("first category items = %+v, want the soup item", result[0].Items)
	}
	if len(result[1].Items) != 0 {
		t.Errorf("second category items = %+v, want empty", result[1].Items)
	}
}

func TestGetCategoriesAppliesPaginationDefaults(t *testing.T) {
	var gotPage, gotLimit int
	repo := &fakeCategoryRepo{
		listFn: func(page, limit int) ([]models.Category, int, error) {
			gotPage, gotLimit = page, limit
			return nil, 0, nil
		},
	}
	svc := NewCategoryService(repo, &fakeMenuRepo{}, newTestDB(t))

	if _, _, err := svc.GetCategories(0, -3); err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if gotPage != 1 || gotLimit != 10 {
		t.Errorf("page %d limit %d, want defaults 1 and 10", gotPage, gotLimit)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{}, &fakeMenuRepo{}, newTestDB(t))
	if err := svc.DeleteCategory(3); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
