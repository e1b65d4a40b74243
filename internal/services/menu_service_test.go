package services

import (
	"errors"
	"testing"

	"restaurant_backend/internal/models"
)

func existingCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		getByIDFn: func(id int64) (*models.Category, error) {
			return &models.Category{ID: id, Name: "Mains"}, nil
		},
	}
}

func newMenuFakeStore() *fakeMenuRepo {
	var stored *models.MenuItem
	repo := &fakeMenuRepo{}
	repo.createFn = func(item *models.MenuItem) (int64, error) {
		i := *item
		i.ID = 1
		stored = &i
		return 1, nil
	}
	repo.getByIDFn = func(id int64) (*models.MenuItem, error) {
		i := *stored
		return &i, nil
	}
	return repo
}

func TestCreateMenuItemValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateMenuItemRequest
	}{
		{
			name: "blank name",
			req:  CreateMenuItemRequest{Name: "  ", Price: 10, CategoryID: 1},
		},
		{
			name: "zero price",
			req:  CreateMenuItemRequest{Name: "Plov", Price: 0, CategoryID: 1},
		},
		{
			name: "negative price",
			req:  CreateMenuItemRequest{Name: "Plov", Price: -5, CategoryID: 1},
		},
		{
			name: "blank tag label",
			req: CreateMenuItemRequest{
				Name: "Plov", Price: 10, CategoryID: 1,
				Tags: []MenuItemTagRequest{{Label: "  "}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMenuService(newMenuFakeStore(), existingCategoryRepo(), newTestDB(t))
			_, err := svc.CreateMenuItem(tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateMenuItemRequiresExistingCategory(t *testing.T) {
	svc := NewMenuService(newMenuFakeStore(), &fakeCategoryRepo{}, newTestDB(t))
	_, err := svc.CreateMenuItem(CreateMenuItemRequest{Name: "Plov", Price: 10, CategoryID: 99})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing category, got %v", err)
	}
}

func TestCreateMenuItemDefaultsAvailability(t *testing.T) {
	repo := newMenuFakeStore()
	svc := NewMenuService(repo, existingCategoryRepo(), newTestDB(t))

	item, err := svc.CreateMenuItem(CreateMenuItemRequest{Name: "Plov", Price: 12.5, CategoryID: 1})
	if err != nil {
		t.Fatalf("CreateMenuItem failed: %v", err)
	}
	if !item.IsAvailable {
		t.Error("is_available should default to true when omitted")
	}
}

func TestCreateMenuItemHonorsExplicitUnavailability(t *testing.T) {
	repo := newMenuFakeStore()
	svc := NewMenuService(repo, existingCategoryRepo(), newTestDB(t))

	item, err := svc.CreateMenuItem(CreateMenuItemRequest{
		Name: "Seasonal Special", Price: 20, CategoryID: 1, IsAvailable: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("CreateMenuItem failed: %v", err)
	}
	if item.IsAvailable {
		t.Error("explicit is_available=false was ignored")
	}
}

func TestGetMenuItemsDefaultsToAvailableOnly(t *testing.T) {
	var got models.MenuItemFilters
	repo := &fakeMenuRepo{
		listFn: func(filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
			got = filters
			return nil, 0, nil
		},
	}
	svc := NewMenuService(repo, existingCategoryRepo(), newTestDB(t))

	if _, _, err := svc.GetMenuItems(models.MenuItemFilters{}); err != nil {
		t.Fatalf("GetMenuItems failed: %v", err)
	}
	if got.Available == nil || !*got.Available {
		t.Errorf("available filter = %v, want default true", got.Available)
	}
	if got.Page != 1 || got.Limit != 10 {
		t.Errorf("filters = page %d limit %d, want defaults 1 and 10", got.Page, got.Limit)
	}
}

func TestGetMenuItemsKeepsExplicitAvailabilityFilter(t *testing.T) {
	var got models.MenuItemFilters
	repo := &fakeMenuRepo{
		listFn: func(filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
			got = filters
			return nil, 0, nil
		},
	}
	svc := NewMenuService(repo, existingCategoryRepo(), newTestDB(t))

	if _, _, err := svc.GetMenuItems(models.MenuItemFilters{Available: boolPtr(false)}); err != nil {
		t.Fatalf("GetMenuItems failed: %v", err)
	}
	if got.Available == nil || *got.Available {
		t.Errorf("available filter = %v, want explicit false preserved", got.Available)
	}
}

func TestUpdateMenuItem(t *testing.T) {
	base := models.MenuItem{
		ID:          1,
		Name:        "Plov",
		Price:       12.5,
		CategoryID:  1,
		IsAvailable: true,
	}

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		stored := base
		var replacedTags []models.MenuItemTag
		tagsReplaced := false
		repo := &fakeMenuRepo{
			getByIDFn: func(id int64) (*models.MenuItem, error) {
				i := stored
				return &i, nil
			},
			updateFn: func(item *models.MenuItem) error {
				stored = *item
				return nil
			},
			replaceTagsFn: func(itemID int64, tags []models.MenuItemTag) error {
				tagsReplaced = true
				replacedTags = tags
				return nil
			},
		}
		svc := NewMenuService(repo, existingCategoryRepo(), newTestDB(t))

		item, err := svc.UpdateMenuItem(1, UpdateMenuItemRequest{Price: floatPtr(14)})
		if err != nil {
			t.Fatalf("UpdateMenuItem failed: %v", err)
		}
		if item.Price != 14 {
			t.Errorf("price = %v, want 14", item.Price)
		}
		if item.Name != "Plov" {
			t.Errorf("name = %q, untouched field changed", item.Name)
		}
		if tagsReplaced {
			t.Errorf("tags were replaced without a tags patch: %+v", replacedTags)
		}
	})

	t.Run("tags patch replaces the tag list", func(t *testing.T) {
		stored := base
		var replacedTags []models.MenuItemTag
		repo := &fakeMenuRepo{
			getByIDFn: func(id int64) (*models.MenuItem, error) {
				i := stored
				return &i, nil
			},
			updateFn: func(item *models.MenuItem) error {
				stored = *item
				return nil
			},
			replaceTagsFn: func(itemID int64, tags []models.MenuItemTag) error {
				replacedTags = tags
				return nil
			},
		}
		svc := NewMenuService(repo, existingCategoryRepo(), newTestDB(t))

		_, err := svc.UpdateMenuItem(1, UpdateMenuItemRequest{
			Tags: &[]MenuItemTagRequest{{Label: "spicy"}, {Label: "new"}},
		})
		if err != nil {
			t.Fatalf("UpdateMenuItem failed: %v", err)
		}
		if len(replacedTags) != 2 || replacedTags[0].Label != "spicy" {
			t.Errorf("replaced tags = %+v, want [spicy new]", replacedTags)
		}
	})

	t.Run("invalid price rejected", func(t *testing.T) {
		stored := base
		repo := &fakeMenuRepo{
			getByIDFn: func(id int64) (*models.MenuItem, error) {
				i := stored
				return &i, nil
			},
		}
		svc := NewMenuService(repo, existingCategoryRepo(), newTestDB(t))

		_, err := svc.UpdateMenuItem(1, UpdateMenuItemRequest{Price: floatPtr(0)})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		svc := NewMenuService(&fakeMenuRepo{}, existingCategoryRepo(), newTestDB(t))
		_, err := svc.UpdateMenuItem(42, UpdateMenuItemRequest{Price: floatPtr(5)})
		if !errors.Is(err, ErrMenuItemNotFound) {
			t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
		}
	})
}

func TestDeleteMenuItemNotFound(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{}, existingCategoryRepo(), newTestDB(t))
	if err := svc.DeleteMenuItem(9); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}
