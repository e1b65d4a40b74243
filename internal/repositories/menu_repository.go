package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_backend/internal/models"

	"github.com/lib/pq"
)

// MenuRepository defines the interface for menu item database operations.
type MenuRepository interface {
	CreateMenuItem(executor SQLExecutor, item *models.MenuItem) (int64, error)
	GetMenuItemByID(id int64) (*models.MenuItem, error)
	GetMenuItems(filters models.MenuItemFilters) ([]models.MenuItem, int, error)
	GetMenuItemsByIDs(ids []int64) ([]models.MenuItem, error)
	GetAvailableByCategory(categoryID int64) ([]models.MenuItem, error)
	UpdateMenuItem(executor SQLExecutor, item *models.MenuItem) error
	ReplaceTags(executor SQLExecutor, itemID int64, tags []models.MenuItemTag) error
	DeleteMenuItem(executor SQLExecutor, id int64) error
	CountMenuItems() (int, error)
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenuItem(executor SQLExecutor, item *models.MenuItem) (int64, error) {
	query := `INSERT INTO menu_items
	            (name, description, price, category_id, is_available, featured, badge, image, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query,
		item.Name, item.Description, item.Price, item.CategoryID, item.IsAvailable,
		item.Featured, item.Badge, item.Image, currentTime, currentTime,
	).Scan(&item.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating menu item: %v", ErrDatabaseError, err)
	}

	if err := r.ReplaceTags(executor, item.ID, item.Tags); err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (r *menuRepository) ReplaceTags(executor SQLExecutor, itemID int64, tags []models.MenuItemTag) error {
	if _, err := executor.Exec(`DELETE FROM menu_item_tags WHERE menu_item_id = $1`, itemID); err != nil {
		return fmt.Errorf("%w: clearing tags for menu item %d: %v", ErrDatabaseError, itemID, err)
	}
	for i, tag := range tags {
		_, err := executor.Exec(
			`INSERT INTO menu_item_tags (menu_item_id, label, color, position) VALUES ($1, $2, $3, $4)`,
			itemID, tag.Label, tag.Color, i,
		)
		if err != nil {
			return fmt.Errorf("%w: inserting tag '%s' for menu item %d: %v", ErrDatabaseError, tag.Label, itemID, err)
		}
	}
	return nil
}

func (r *menuRepository) GetMenuItemByID(id int64) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `SELECT id, name, description, price, category_id, is_available, featured, badge, image, created_at, updated_at
	          FROM menu_items WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.CategoryID,
		&item.IsAvailable, &item.Featured, &item.Badge, &item.Image, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting menu item by ID %d: %v", ErrDatabaseError, id, err)
	}

	if err := r.loadTags([]*models.MenuItem{item}); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *menuRepository) GetMenuItems(filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
	items := []models.MenuItem{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT m.id, m.name, m.description, m.price, m.category_id, m.is_available,
               m.featured, m.badge, m.image, m.created_at, m.updated_at,
               COUNT(*) OVER() AS total_count
        FROM menu_items m
    `)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.Available != nil {
		conditions = append(conditions, fmt.Sprintf("m.is_available = $%d", argCounter))
		args = append(args, *filters.Available)
		argCounter++
	}
	if filters.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("m.category_id = $%d", argCounter))
		args = append(args, *filters.CategoryID)
		argCounter++
	}
	if filters.Tag != nil && *filters.Tag != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM menu_item_tags t WHERE t.menu_item_id = m.id AND t.label = $%d)", argCounter))
		args = append(args, *filters.Tag)
		argCounter++
	}
	if filters.Name != nil && *filters.Name != "" {
		conditions = append(conditions, fmt.Sprintf("m.name ILIKE '%%' || $%d || '%%'", argCounter))
		args = append(args, *filters.Name)
		argCounter++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY m.created_at DESC")

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCounter))
	args = append(args, filters.Limit)
	argCounter++
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCounter))
	args = append(args, (filters.Page-1)*filters.Limit)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.CategoryID,
			&item.IsAvailable, &item.Featured, &item.Badge, &item.Image,
			&item.CreatedAt, &item.UpdatedAt, &totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating menu item rows: %v", ErrDatabaseError, err)
	}

	refs := make([]*models.MenuItem, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	if err := r.loadTags(refs); err != nil {
		return nil, 0, err
	}
	return items, totalCount, nil
}

// GetMenuItemsByIDs resolves menu items in one batch lookup. Used by order
// creation to snapshot authoritative prices.
func (r *menuRepository) GetMenuItemsByIDs(ids []int64) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if len(ids) == 0 {
		return items, nil
	}
	query := `SELECT id, name, description, price, category_id, is_available, featured, badge, image, created_at, updated_at
	          FROM menu_items WHERE id = ANY($1)`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu items by ids: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.CategoryID,
			&item.IsAvailable, &item.Featured, &item.Badge, &item.Image,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *menuRepository) GetAvailableByCategory(categoryID int64) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	query := `SELECT id, name, description, price, category_id, is_available, featured, badge, image, created_at, updated_at
	          FROM menu_items
	          WHERE category_id = $1 AND is_available = TRUE
	          ORDER BY created_at DESC`
	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu items for category %d: %v", ErrDatabaseError, categoryID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.CategoryID,
			&item.IsAvailable, &item.Featured, &item.Badge, &item.Image,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu item rows: %v", ErrDatabaseError, err)
	}

	refs := make([]*models.MenuItem, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	if err := r.loadTags(refs); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) UpdateMenuItem(executor SQLExecutor, item *models.MenuItem) error {
	query := `UPDATE menu_items
	          SET name = $1, description = $2, price = $3, category_id = $4, is_available = $5,
	              featured = $6, badge = $7, image = $8, updated_at = $9
	          WHERE id = $10`
	result, err := executor.Exec(query,
		item.Name, item.Description, item.Price, item.CategoryID, item.IsAvailable,
		item.Featured, item.Badge, item.Image, time.Now(), item.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating menu item ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) DeleteMenuItem(executor SQLExecutor, id int64) error {
	// Tags cascade; existing orders keep their snapshots.
	query := `DELETE FROM menu_items WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting menu item ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) CountMenuItems() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting menu items: %v", ErrDatabaseError, err)
	}
	return count, nil
}

// loadTags attaches tags to the given items in one query.
func (r *menuRepository) loadTags(items []*models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[int64]*models.MenuItem, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		item.Tags = []models.MenuItemTag{}
		byID[item.ID] = item
		ids = append(ids, item.ID)
	}

	query := `SELECT id, menu_item_id, label, color, position
	          FROM menu_item_tags
	          WHERE menu_item_id = ANY($1)
	          ORDER BY menu_item_id, position`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("%w: querying menu item tags: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag models.MenuItemTag
		if err := rows.Scan(&tag.ID, &tag.MenuItemID, &tag.Label, &tag.Color, &tag.Position); err != nil {
			return fmt.Errorf("%w: scanning menu item tag: %v", ErrDatabaseError, err)
		}
		if item, ok := byID[tag.MenuItemID]; ok {
			item.Tags = append(item.Tags, tag)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: iterating menu item tag rows: %v", ErrDatabaseError, err)
	}
	return nil
}
