package services

import (
	"errors"
	"testing"

	"restaurant_backend/internal/models"
)

func TestCreateMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateMessageRequest
	}{
		{
			name: "invalid email",
			req:  CreateMessageRequest{Email: "not-an-email", Message: "Hello"},
		},
		{
			name: "blank body",
			req:  CreateMessageRequest{Email: "guest@example.com", Message: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMessageService(&fakeMessageRepo{}, newTestDB(t))
			_, err := svc.CreateMessage(tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateMessageStartsUnread(t *testing.T) {
	var stored models.Message
	repo := &fakeMessageRepo{
		createFn: func(message *models.Message) (int64, error) {
			stored = *message
			stored.ID = 1
			return 1, nil
		},
		getByIDFn: func(id int64) (*models.Message, error) {
			m := stored
			return &m, nil
		},
	}
	svc := NewMessageService(repo, newTestDB(t))

	message, err := svc.CreateMessage(CreateMessageRequest{
		Name:    strPtr("Guest"),
		Email:   "guest@example.com",
		Message: "Do you take large group bookings?",
	})
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if message.Read {
		t.Error("new message should start unread")
	}
}

func TestFetchAndMarkRead(t *testing.T) {
	t.Run("marks before returning", func(t *testing.T) {
		stored := models.Message{ID: 1, Email: "guest@example.com", Message: "Hi", Read: false}
		repo := &fakeMessageRepo{
			markReadFn: func(id int64) error {
				stored.Read = true
				return nil
			},
			getByIDFn: func(id int64) (*models.Message, error) {
				m := stored
				return &m, nil
			},
		}
		svc := NewMessageService(repo, newTestDB(t))

		message, err := svc.FetchAndMarkRead(1)
		if err != nil {
			t.Fatalf("FetchAndMarkRead failed: %v", err)
		}
		if !message.Read {
			t.Error("returned message should already be marked read")
		}
	})

	t.Run("idempotent on an already-read message", func(t *testing.T) {
		stored := models.Message{ID: 1, Email: "guest@example.com", Message: "Hi", Read: true}
		calls := 0
		repo := &fakeMessageRepo{
			markReadFn: func(id int64) error {
				calls++
				stored.Read = true
				return nil
			},
			getByIDFn: func(id int64) (*models.Message, error) {
				m := stored
				return &m, nil
			},
		}
		svc := NewMessageService(repo, newTestDB(t))

		for i := 0; i < 2; i++ {
			message, err := svc.FetchAndMarkRead(1)
			if err != nil {
				t.Fatalf("FetchAndMarkRead call %d failed: %v", i+1, err)
			}
			if !message.Read {
				t.Fatalf("call %d returned unread message", i+1)
			}
		}
		if calls != 2 {
			t.Errorf("MarkRead called %d times, want 2", calls)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		svc := NewMessageService(&fakeMessageRepo{}, newTestDB(t))
		_, err := svc.FetchAndMarkRead(99)
		if !errors.Is(err, ErrMessageNotFound) {
			t.Fatalf("expected ErrMessageNotFound, got %v", err)
		}
	})
}

func TestUpdateMessage(t *testing.T) {
	base := models.Message{ID: 1, Email: "guest@example.com", Message: "Hi", Read: false}

	t.Run("read flag patch", func(t *testing.T) {
		stored := base
		repo := &fakeMessageRepo{
			getByIDFn: func(id int64) (*models.Message, error) {
				m := stored
				return &m, nil
			},
			updateFn: func(message *models.Message) error {
				stored = *message
				return nil
			},
		}
		svc := NewMessageService(repo, newTestDB(t))

		message, err := svc.UpdateMessage(1, UpdateMessageRequest{Read: boolPtr(true)})
		if err != nil {
			t.Fatalf("UpdateMessage failed: %v", err)
		}
		if !message.Read {
			t.Error("read flag patch was not applied")
		}
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		stored := base
		repo := &fakeMessageRepo{
			getByIDFn: func(id int64) (*models.Message, error) {
				m := stored
				return &m, nil
			},
		}
		svc := NewMessageService(repo, newTestDB(t))

		_, err := svc.UpdateMessage(1, UpdateMessageRequest{Email: strPtr("broken")})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestDeleteMessageNotFound(t *testing.T) {
	svc := NewMessageService(&fakeMessageRepo{}, newTestDB(t))
	if err := svc.DeleteMessage(5); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestGetMessagesAppliesPaginationDefaults(t *testing.T) {
	var got models.MessageFilters
	repo := &fakeMessageRepo{
		listFn: func(filters models.MessageFilters) ([]models.Message, int, error) {
			got = filters
			return nil, 0, nil
		},
	}
	svc := NewMessageService(repo, newTestDB(t))

	if _, _, err := svc.GetMessages(models.MessageFilters{}); err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if got.Page != 1 || got.Limit != 10 {
		t.Errorf("filters = page %d limit %d, want defaults 1 and 10", got.Page, got.Limit)
	}
}
