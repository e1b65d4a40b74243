package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_backend/internal/models"
)

// MessageRepository defines the interface for contact message database operations.
type MessageRepository interface {
	CreateMessage(executor SQLExecutor, message *models.Message) (int64, error)
	GetMessageByID(id int64) (*models.Message, error)
	GetMessages(filters models.MessageFilters) ([]models.Message, int, error)
	UpdateMessage(executor SQLExecutor, message *models.Message) error
	MarkRead(executor SQLExecutor, id int64, updatedAt time.Time) error
	DeleteMessage(executor SQLExecutor, id int64) error
	CountMessages() (int, error)
}

type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new instance of MessageRepository.
func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateMessage(executor SQLExecutor, message *models.Message) (int64, error) {
	query := `INSERT INTO messages (name, email, subject, message, read, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query,
		message.Name, message.Email, message.Subject, message.Message, message.Read,
		currentTime, currentTime,
	).Scan(&message.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating message: %v", ErrDatabaseError, err)
	}
	return message.ID, nil
}

func (r *messageRepository) GetMessageByID(id int64) (*models.Message, error) {
	message := &models.Message{}
	query := `SELECT id, name, email, subject, message, read, created_at, updated_at
	          FROM messages WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&message.ID, &message.Name, &message.Email, &message.Subject, &message.Message,
		&message.Read, &message.CreatedAt, &message.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting message by ID %d: %v", ErrDatabaseError, id, err)
	}
	return message, nil
}

func (r *messageRepository) GetMessages(filters models.MessageFilters) ([]models.Message, int, error) {
	messages := []models.Message{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, email, subject, message, read, created_at, updated_at,
               COUNT(*) OVER() AS total_count
        FROM messages
    `)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.Read != nil {
		conditions = append(conditions, fmt.Sprintf("read = $%d", argCounter))
		args = append(args, *filters.Read)
		argCounter++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC")

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCounter))
	args = append(args, filters.Limit)
	argCounter++
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCounter))
	args = append(args, (filters.Page-1)*filters.Limit)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying messages: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Message
		err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read,
			&m.CreatedAt, &m.UpdatedAt, &totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning message: %v", ErrDatabaseError, err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating message rows: %v", ErrDatabaseError, err)
	}
	return messages, totalCount, nil
}

func (r *messageRepository) UpdateMessage(executor SQLExecutor, message *models.Message) error {
	query := `UPDATE messages
	          SET name = $1, email = $2, subject = $3, message = $4, read = $5, updated_at = $6
	          WHERE id = $7`
	result, err := executor.Exec(query,
		message.Name, message.Email, message.Subject, message.Message, message.Read,
		time.Now(), message.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating message ID %d: %v", ErrDatabaseError, message.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) MarkRead(executor SQLExecutor, id int64, updatedAt time.Time) error {
	// Idempotent; setting read on an already-read message is a no-op update.
	query := `UPDATE messages SET read = TRUE, updated_at = $1 WHERE id = $2`
	result, err := executor.Exec(query, updatedAt, id)
	if err != nil {
		return fmt.Errorf("%w: marking message ID %d read: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) DeleteMessage(executor SQLExecutor, id int64) error {
	query := `DELETE FROM messages WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting message ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) CountMessages() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting messages: %v", ErrDatabaseError, err)
	}
	return count, nil
}
