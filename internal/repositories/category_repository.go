package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restaurant_backend/internal/models"

	"github.com/lib/pq"
)

// CategoryRepository defines the interface for category database operations.
type CategoryRepository interface {
	CreateCategory(executor SQLExecutor, category *models.Category) (int64, error)
	GetCategoryByID(id int64) (*models.Category, error)
	GetCategories(page, limit int) ([]models.Category, int, error)
	UpdateCategory(executor SQLExecutor, category *models.Category) error
	DeleteCategory(executor SQLExecutor, id int64) error
	CountCategories() (int, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository.
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(executor SQLExecutor, category *models.Category) (int64, error) {
	query := `INSERT INTO categories (name, description, icon, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query, category.Name, category.Description, category.Icon, currentTime, currentTime).Scan(&category.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: category name '%s' already exists (constraint: %s)", ErrDuplicateKey, category.Name, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating category: %v", ErrDatabaseError, err)
	}
	return category.ID, nil
}

func (r *categoryRepository) GetCategoryByID(id int64) (*models.Category, error) {
	category := &models.Category{}
	query := `SELECT id, name, description, icon, created_at, updated_at FROM categories WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Name, &category.Description, &category.Icon, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting category by ID %d: %v", ErrDatabaseError, id, err)
	}
	return category, nil
}

func (r *categoryRepository) GetCategories(page, limit int) ([]models.Category, int, error) {
	categories := []models.Category{}
	totalCount := 0
	query := `SELECT id, name, description, icon, created_at, updated_at, COUNT(*) OVER() AS total_count
	          FROM categories
	          ORDER BY created_at DESC
	          LIMIT $1 OFFSET $2`
	offset := (page - 1) * limit
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting categories: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.Icon, &category.CreatedAt, &category.UpdatedAt, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning category: %v", ErrDatabaseError, err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating categories: %v", ErrDatabaseError, err)
	}
	return categories, totalCount, nil
}

func (r *categoryRepository) UpdateCategory(executor SQLExecutor, category *models.Category) error {
	query := `UPDATE categories SET name = $1, description = $2, icon = $3, updated_at = $4 WHERE id = $5`
	result, err := executor.Exec(query, category.Name, category.Description, category.Icon, time.Now(), category.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: category name '%s' already exists (constraint: %s)", ErrDuplicateKey, category.Name, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating category ID %d: %v", ErrDatabaseError, category.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) DeleteCategory(executor SQLExecutor, id int64) error {
	// Menu items keep their category_id untouched; dangling references are
	// tolerated by design.
	query := `DELETE FROM categories WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting category ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) CountCategories() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting categories: %v", ErrDatabaseError, err)
	}
	return count, nil
}
