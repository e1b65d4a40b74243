package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/repositories"
	"restaurant_backend/pkg/utils"
)

// --- Custom Service Errors for reservations ---
var (
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrInvalidReservationStatus = errors.New("invalid reservation status")
)

// Reservation statuses.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// ReservationPriceFloor is the minimum reservation price, applied as the
// default when the caller does not supply one.
const ReservationPriceFloor = 80.0

// --- Reservation DTOs ---
type CreateReservationRequest struct {
	CustomerName string   `json:"customer_name" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	Date         string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string   `json:"time" binding:"required"`
	Guests       int      `json:"guests" binding:"required"`
	Notes        *string  `json:"notes"`
	Price        *float64 `json:"price"`
}

type UpdateReservationRequest struct {
	CustomerName *string  `json:"customer_name"`
	Phone        *string  `json:"phone"`
	Date         *string  `json:"date"`
	Time         *string  `json:"time"`
	Guests       *int     `json:"guests"`
	Status       *string  `json:"status"`
	Notes        *string  `json:"notes"`
	Price        *float64 `json:"price"`
}

// --- ReservationService Interface ---
type ReservationService interface {
	CreateReservation(req CreateReservationRequest) (*models.Reservation, error)
	GetReservationByID(id int64) (*models.Reservation, error)
	GetReservations(filters models.ReservationFilters) ([]models.Reservation, int, error)
	UpdateReservation(id int64, req UpdateReservationRequest) (*models.Reservation, error)
	CancelReservation(id int64) (*models.Reservation, error)
	DeleteReservation(id int64) error
}

// --- reservationService Implementation ---
type reservationService struct {
	reservationRepo repositories.ReservationRepository
	db              *sql.DB
}

// NewReservationService creates a new instance of ReservationService.
func NewReservationService(rr repositories.ReservationRepository, db *sql.DB) ReservationService {
	return &reservationService{
		reservationRepo: rr,
		db:              db,
	}
}

func parseReservationDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be a valid date in YYYY-MM-DD format", ErrValidation)
	}
	return parsed, nil
}

func (s *reservationService) CreateReservation(req CreateReservationRequest) (*models.Reservation, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if !utils.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: phone number is invalid", ErrValidation)
	}
	date, err := parseReservationDate(req.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrValidation)
	}
	if req.Guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrValidation)
	}

	price := ReservationPriceFloor
	if req.Price != nil {
		if *req.Price < ReservationPriceFloor {
			return nil, fmt.Errorf("%w: price must be at least %.0f", ErrValidation, ReservationPriceFloor)
		}
		price = *req.Price
	}

	reservation := &models.Reservation{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		Date:         date,
		Time:         req.Time,
		Guests:       req.Guests,
		Status:       ReservationStatusPending,
		Notes:        req.Notes,
		Price:        price,
	}

	id, err := s.reservationRepo.CreateReservation(s.db, reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return s.reservationRepo.GetReservationByID(id)
}

func (s *reservationService) GetReservationByID(id int64) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation by ID: %w", err)
	}
	return reservation, nil
}

func (s *reservationService) GetReservations(filters models.ReservationFilters) ([]models.Reservation, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 10
	}

	reservations, totalCount, err := s.reservationRepo.GetReservations(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get reservations: %w", err)
	}
	return reservations, totalCount, nil
}

// UpdateReservation applies an unrestricted admin patch, status included.
func (s *reservationService) UpdateReservation(id int64, req UpdateReservationRequest) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to find reservation for update: %w", err)
	}

	if req.CustomerName != nil {
		if strings.TrimSpace(*req.CustomerName) == "" {
			return nil, fmt.Errorf("%w: customer name cannot be empty if provided", ErrValidation)
		}
		reservation.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.Phone != nil {
		if !utils.IsValidPhone(*req.Phone) {
			return nil, fmt.Errorf("%w: phone number is invalid", ErrValidation)
		}
		reservation.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Date != nil {
		date, err := parseReservationDate(*req.Date)
		if err != nil {
			return nil, err
		}
		reservation.Date = date
	}
	if req.Time != nil {
		reservation.Time = *req.Time
	}
	if req.Guests != nil {
		if *req.Guests < 1 {
			return nil, fmt.Errorf("%w: guests must be at least 1", ErrValidation)
		}
		reservation.Guests = *req.Guests
	}
	if req.Status != nil {
		if !isValidReservationStatus(*req.Status) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidReservationStatus, *req.Status)
		}
		reservation.Status = *req.Status
	}
	if req.Notes != nil {
		reservation.Notes = req.Notes
	}
	if req.Price != nil {
		if *req.Price < ReservationPriceFloor {
			return nil, fmt.Errorf("%w: price must be at least %.0f", ErrValidation, ReservationPriceFloor)
		}
		reservation.Price = *req.Price
	}

	if err := s.reservationRepo.UpdateReservation(s.db, reservation); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	return s.reservationRepo.GetReservationByID(id)
}

// CancelReservation forces status to cancelled unconditionally, whatever the
// current state. Calling it twice succeeds both times.
func (s *reservationService) CancelReservation(id int64) (*models.Reservation, error) {
	err := s.reservationRepo.UpdateReservationStatus(s.db, id, ReservationStatusCancelled, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return s.reservationRepo.GetReservationByID(id)
}

func (s *reservationService) DeleteReservation(id int64) error {
	err := s.reservationRepo.DeleteReservation(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

func isValidReservationStatus(status string) bool {
	switch status {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	default:
		return false
	}
}
