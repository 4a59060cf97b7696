package repository

import (
	"context"
	"encoding/json"
	"fmt"
	bookingserrors "rentals/internal/bookings/errors"
	"rentals/pkg/model"
	"rentals/pkg/store"
	"sync"
)

const (
	LedgerKey = "bookings"
)

type BookingRepository interface {
	// Create appends the booking to the persisted collection.
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	// FindAll returns bookings in insertion order.
	FindAll(ctx context.Context) ([]model.Booking, error)
	// Delete removes the booking with the given id and reports whether one
	// was stored.
	Delete(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
}

// storeBookingRepository keeps the whole ledger as one JSON array under
// LedgerKey. Writes are read-modify-write and are serialised by mu, which
// only covers callers inside this process.
type storeBookingRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewStoreBookingRepository(s store.Store) BookingRepository {
	return &storeBookingRepository{store: s}
}

func (r *storeBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, *booking)

	if err := r.save(ctx, bookings); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *storeBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if bookings[i].ID == id {
			b := bookings[i]
			return &b, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (r *storeBookingRepository) FindAll(ctx context.Context) ([]model.Booking, error) {
	return r.load(ctx)
}

func (r *storeBookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	kept := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookings) {
		return false, nil
	}

	if err := r.save(ctx, kept); err != nil {
		return false, fmt.Errorf("failed to delete booking: %w", err)
	}
	return true, nil
}

func (r *storeBookingRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *storeBookingRepository) load(ctx context.Context) ([]model.Booking, error) {
	raw, found, err := r.store.Get(ctx, LedgerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	if !found {
		return []model.Booking{}, nil
	}

	var bookings []model.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", bookingserrors.ErrCorruptLedger, err)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, nil
}

func (r *storeBookingRepository) save(ctx context.Context, bookings []model.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}
	return r.store.Set(ctx, LedgerKey, string(data))
}
