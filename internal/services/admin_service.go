package services

import (
	"fmt"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/repositories"
)

// AdminService exposes aggregate statistics over the domain collections.
type AdminService interface {
	GetStatistics() (*models.Statistics, error)
}

type adminService struct {
	messageRepo     repositories.MessageRepository
	orderRepo       repositories.OrderRepository
	menuRepo        repositories.MenuRepository
	categoryRepo    repositories.CategoryRepository
	reservationRepo repositories.ReservationRepository
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(
	messageRepo repositories.MessageRepository,
	orderRepo repositories.OrderRepository,
	menuRepo repositories.MenuRepository,
	categoryRepo repositories.CategoryRepository,
	reservationRepo repositories.ReservationRepository,
) AdminService {
	return &adminService{
		messageRepo:     messageRepo,
		orderRepo:       orderRepo,
		menuRepo:        menuRepo,
		categoryRepo:    categoryRepo,
		reservationRepo: reservationRepo,
	}
}

// GetStatistics returns the raw count of every domain collection.
func (s *adminService) GetStatistics() (*models.Statistics, error) {
	stats := &models.Statistics{}
	var err error

	if stats.Messages, err = s.messageRepo.CountMessages(); err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	if stats.Orders, err = s.orderRepo.CountOrders(); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if stats.MenuItems, err = s.menuRepo.CountMenuItems(); err != nil {
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}
	if stats.Categories, err = s.categoryRepo.CountCategories(); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if stats.Reservations, err = s.reservationRepo.CountReservations(); err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	return stats, nil
}
