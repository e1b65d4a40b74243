package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_backend/internal/models"
)

// ReservationRepository defines the interface for reservation database operations.
type ReservationRepository interface {
	CreateReservation(executor SQLExecutor, reservation *models.Reservation) (int64, error)
	GetReservationByID(id int64) (*models.Reservation, error)
	GetReservations(filters models.ReservationFilters) ([]models.Reservation, int, error)
	UpdateReservation(executor SQLExecutor, reservation *models.Reservation) error
	UpdateReservationStatus(executor SQLExecutor, id int64, newStatus string, updatedAt time.Time) error
	DeleteReservation(executor SQLExecutor, id int64) error
	CountReservations() (int, error)
}

type reservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new instance of ReservationRepository.
func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateReservation(executor SQLExecutor, reservation *models.Reservation) (int64, error) {
	query := `INSERT INTO reservations
	            (customer_name, phone, reservation_date, reservation_time, guests, status, notes, price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query,
		reservation.CustomerName, reservation.Phone, reservation.Date, reservation.Time,
		reservation.Guests, reservation.Status, reservation.Notes, reservation.Price,
		currentTime, currentTime,
	).Scan(&reservation.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating reservation: %v", ErrDatabaseError, err)
	}
	return reservation.ID, nil
}

func (r *reservationRepository) GetReservationByID(id int64) (*models.Reservation, error) {
	reservation := &models.Reservation{}
	query := `SELECT id, customer_name, phone, reservation_date, reservation_time, guests, status, notes, price, created_at, updated_at
	          FROM reservations WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&reservation.ID, &reservation.CustomerName, &reservation.Phone, &reservation.Date,
		&reservation.Time, &reservation.Guests, &reservation.Status, &reservation.Notes,
		&reservation.Price, &reservation.CreatedAt, &reservation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting reservation by ID %d: %v", ErrDatabaseError, id, err)
	}
	return reservation, nil
}

func (r *reservationRepository) GetReservations(filters models.ReservationFilters) ([]models.Reservation, int, error) {
	reservations := []models.Reservation{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, customer_name, phone, reservation_date, reservation_time, guests, status, notes, price,
               created_at, updated_at, COUNT(*) OVER() AS total_count
        FROM reservations
    `)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCounter))
		args = append(args, *filters.Status)
		argCounter++
	}
	if filters.Date != nil && *filters.Date != "" {
		parsedDate, err := time.Parse("2006-01-02", *filters.Date)
		if err == nil {
			conditions = append(conditions, fmt.Sprintf("reservation_date = $%d", argCounter))
			args = append(args, parsedDate)
			argCounter++
		}
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
		return nil, 0, fmt.Errorf("%w: querying reservations: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var res models.Reservation
		err := rows.Scan(
			&res.ID, &res.CustomerName, &res.Phone, &res.Date, &res.Time, &res.Guests,
			&res.Status, &res.Notes, &res.Price, &res.CreatedAt, &res.UpdatedAt, &totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning reservation: %v", ErrDatabaseError, err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating reservation rows: %v", ErrDatabaseError, err)
	}
	return reservations, totalCount, nil
}

func (r *reservationRepository) UpdateReservation(executor SQLExecutor, reservation *models.Reservation) error {
	query := `UPDATE reservations
	          SET customer_name = $1, phone = $2, reservation_date = $3, reservation_time = $4,
	              guests = $5, status = $6, notes = $7, price = $8, updated_at = $9
	          WHERE id = $10`
	result, err := executor.Exec(query,
		reservation.CustomerName, reservation.Phone, reservation.Date, reservation.Time,
		reservation.Guests, reservation.Status, reservation.Notes, reservation.Price,
		time.Now(), reservation.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating reservation ID %d: %v", ErrDatabaseError, reservation.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reservationRepository) UpdateReservationStatus(executor SQLExecutor, id int64, newStatus string, updatedAt time.Time) error {
	query := `UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, newStatus, updatedAt, id)
	if err != nil {
		return fmt.Errorf("%w: updating reservation status for ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reservationRepository) DeleteReservation(executor SQLExecutor, id int64) error {
	query := `DELETE FROM reservations WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting reservation ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reservationRepository) CountReservations() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting reservations: %v", ErrDatabaseError, err)
	}
	return count, nil
}
