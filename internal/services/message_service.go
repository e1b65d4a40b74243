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

// --- Custom Service Errors for messages ---
var (
	ErrMessageNotFound = errors.New("message not found")
)

// --- Message DTOs ---
type CreateMessageRequest struct {
	Name    *string `json:"name"`
	Email   string  `json:"email" binding:"required"`
	Subject *string `json:"subject"`
	Message string  `json:"message" binding:"required"`
}

type UpdateMessageRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Read    *bool   `json:"read"`
}

// --- MessageService Interface ---
type MessageService interface {
	CreateMessage(req CreateMessageRequest) (*models.Message, error)
	GetMessages(filters models.MessageFilters) ([]models.Message, int, error)
	FetchAndMarkRead(id int64) (*models.Message, error)
	UpdateMessage(id int64, req UpdateMessageRequest) (*models.Message, error)
	DeleteMessage(id int64) error
}

// --- messageService Implementation ---
type messageService struct {
	messageRepo repositories.MessageRepository
	db          *sql.DB
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(mr repositories.MessageRepository, db *sql.DB) MessageService {
	return &messageService{
		messageRepo: mr,
		db:          db,
	}
}

func (s *messageService) CreateMessage(req CreateMessageRequest) (*models.Message, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrValidation)
	}

	message := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Read:    false,
	}
	id, err := s.messageRepo.CreateMessage(s.db, message)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return s.messageRepo.GetMessageByID(id)
}

func (s *messageService) GetMessages(filters models.MessageFilters) ([]models.Message, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 10
	}

	messages, totalCount, err := s.messageRepo.GetMessages(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, totalCount, nil
}

// FetchAndMarkRead returns the message and flips its read flag as a side
// effect. The flip is idempotent; fetching an already-read message is fine.
func (s *messageService) FetchAndMarkRead(id int64) (*models.Message, error) {
	if err := s.messageRepo.MarkRead(s.db, id, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}

	message, err := s.messageRepo.GetMessageByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message by ID: %w", err)
	}
	return message, nil
}

func (s *messageService) UpdateMessage(id int64, req UpdateMessageRequest) (*models.Message, error) {
	message, err := s.messageRepo.GetMessageByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to find message for update: %w", err)
	}

	if req.Name != nil {
		message.Name = req.Name
	}
	if req.Email != nil {
		if !utils.IsValidEmail(*req.Email) {
			return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
		}
		message.Email = *req.Email
	}
	if req.Subject != nil {
		message.Subject = req.Subject
	}
	if req.Message != nil {
		if strings.TrimSpace(*req.Message) == "" {
			return nil, fmt.Errorf("%w: message body cannot be empty if provided", ErrValidation)
		}
		message.Message = *req.Message
	}
	if req.Read != nil {
		message.Read = *req.Read
	}

	if err := s.messageRepo.UpdateMessage(s.db, message); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	return s.messageRepo.GetMessageByID(id)
}

func (s *messageService) DeleteMessage(id int64) error {
	err := s.messageRepo.DeleteMessage(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
