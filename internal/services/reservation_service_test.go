package services

import (
	"errors"
	"testing"

	"restaurant_backend/internal/models"
)

func validReservationRequest() CreateReservationRequest {
	return CreateReservationRequest{
		CustomerName: "Aida Bekova",
		Phone:        "+7 701 123 4567",
		Date:         "2026-09-15",
		Time:         "19:00",
		Guests:       4,
	}
}

func newReservationFakeStore() *fakeReservationRepo {
	var stored *models.Reservation
	repo := &fakeReservationRepo{}
	repo.createFn = func(reservation *models.Reservation) (int64, error) {
		r := *reservation
		r.ID = 1
		stored = &r
		return 1, nil
	}
	repo.getByIDFn = func(id int64) (*models.Reservation, error) {
		r := *stored
		return &r, nil
	}
	return repo
}

func TestCreateReservationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *CreateReservationRequest)
	}{
		{
			name:   "blank customer name",
			mutate: func(req *CreateReservationRequest) { req.CustomerName = "   " },
		},
		{
			name:   "invalid phone",
			mutate: func(req *CreateReservationRequest) { req.Phone = "not-a-phone" },
		},
		{
			name:   "malformed date",
			mutate: func(req *CreateReservationRequest) { req.Date = "15/09/2026" },
		},
		{
			name:   "impossible date",
			mutate: func(req *CreateReservationRequest) { req.Date = "2026-02-30" },
		},
		{
			name:   "blank time",
			mutate: func(req *CreateReservationRequest) { req.Time = " " },
		},
		{
			name:   "zero guests",
			mutate: func(req *CreateReservationRequest) { req.Guests = 0 },
		},
		{
			name:   "price below floor",
			mutate: func(req *CreateReservationRequest) { req.Price = floatPtr(50) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReservationService(&fakeReservationRepo{}, newTestDB(t))
			req := validReservationRequest()
			tt.mutate(&req)
			_, err := svc.CreateReservation(req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateReservationDefaultsPriceToFloor(t *testing.T) {
	repo := newReservationFakeStore()
	svc := NewReservationService(repo, newTestDB(t))

	reservation, err := svc.CreateReservation(validReservationRequest())
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if reservation.Price != ReservationPriceFloor {
		t.Errorf("price = %v, want floor default %v", reservation.Price, ReservationPriceFloor)
	}
	if reservation.Status != ReservationStatusPending {
		t.Errorf("status = %q, want %q", reservation.Status, ReservationStatusPending)
	}
}

func TestCreateReservationKeepsExplicitPrice(t *testing.T) {
	repo := newReservationFakeStore()
	svc := NewReservationService(repo, newTestDB(t))

	req := validReservationRequest()
	req.Price = floatPtr(150)
	reservation, err := svc.CreateReservation(req)
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if reservation.Price != 150 {
		t.Errorf("price = %v, want 150", reservation.Price)
	}
}

func TestUpdateReservation(t *testing.T) {
	base := models.Reservation{
		ID:           1,
		CustomerName: "Aida Bekova",
		Phone:        "+77011234567",
		Time:         "19:00",
		Guests:       4,
		Status:       ReservationStatusPending,
		Price:        ReservationPriceFloor,
	}

	t.Run("status change to confirmed", func(t *testing.T) {
		stored := base
		repo := &fakeReservationRepo{
			getByIDFn: func(id int64) (*models.Reservation, error) {
				r := stored
				return &r, nil
			},
			updateFn: func(reservation *models.Reservation) error {
				stored = *reservation
				return nil
			},
		}
		svc := NewReservationService(repo, newTestDB(t))

		updated, err := svc.UpdateReservation(1, UpdateReservationRequest{
			Status: strPtr(ReservationStatusConfirmed),
		})
		if err != nil {
			t.Fatalf("UpdateReservation failed: %v", err)
		}
		if updated.Status != ReservationStatusConfirmed {
			t.Errorf("status = %q, want %q", updated.Status, ReservationStatusConfirmed)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		stored := base
		repo := &fakeReservationRepo{
			getByIDFn: func(id int64) (*models.Reservation, error) {
				r := stored
				return &r, nil
			},
		}
		svc := NewReservationService(repo, newTestDB(t))

		_, err := svc.UpdateReservation(1, UpdateReservationRequest{Status: strPtr("waitlisted")})
		if !errors.Is(err, ErrInvalidReservationStatus) {
			t.Fatalf("expected ErrInvalidReservationStatus, got %v", err)
		}
	})

	t.Run("price below floor rejected", func(t *testing.T) {
		stored := base
		repo := &fakeReservationRepo{
			getByIDFn: func(id int64) (*models.Reservation, error) {
				r := stored
				return &r, nil
			},
		}
		svc := NewReservationService(repo, newTestDB(t))

		_, err := svc.UpdateReservation(1, UpdateReservationRequest{Price: floatPtr(10)})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing reservation", func(t *testing.T) {
		svc := NewReservationService(&fakeReservationRepo{}, newTestDB(t))
		_, err := svc.UpdateReservation(42, UpdateReservationRequest{Guests: intPtr(2)})
		if !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})
}

func TestCancelReservationIsUnconditional(t *testing.T) {
	for _, current := range []string{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusCancelled,
	} {
		t.Run("from "+current, func(t *testing.T) {
			status := current
			repo := &fakeReservationRepo{
				updateStatusFn: func(id int64, newStatus string) error {
					status = newStatus
					return nil
				},
				getByIDFn: func(id int64) (*models.Reservation, error) {
					return &models.Reservation{ID: id, Status: status}, nil
				},
			}
			svc := NewReservationService(repo, newTestDB(t))

			reservation, err := svc.CancelReservation(1)
			if err != nil {
				t.Fatalf("CancelReservation failed: %v", err)
			}
			if reservation.Status != ReservationStatusCancelled {
				t.Errorf("status = %q, want %q", reservation.Status, ReservationStatusCancelled)
			}
		})
	}
}

func TestCancelReservationNotFound(t *testing.T) {
	svc := NewReservationService(&fakeReservationRepo{}, newTestDB(t))
	_, err := svc.CancelReservation(99)
	if !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}

func TestGetReservationsAppliesPaginationDefaults(t *testing.T) {
	var got models.ReservationFilters
	repo := &fakeReservationRepo{
		listFn: func(filters models.ReservationFilters) ([]models.Reservation, int, error) {
			got = filters
			return nil, 0, nil
		},
	}
	svc := NewReservationService(repo, newTestDB(t))

	if _, _, err := svc.GetReservations(models.ReservationFilters{}); err != nil {
		t.Fatalf("GetReservations failed: %v", err)
	}
	if got.Page != 1 || got.Limit != 10 {
		t.Errorf("filters = page %d limit %d, want defaults 1 and 10", got.Page, got.Limit)
	}
}
