package service

import (
	"context"
	"errors"
	bookingserrors "rentals/internal/bookings/errors"
	"rentals/internal/bookings/events"
	"rentals/internal/bookings/repository"
	"rentals/internal/bookings/validator"
	"rentals/internal/pricing"
	"rentals/pkg/config"
	apperrors "rentals/pkg/errors"
	"rentals/pkg/model"
	"sort"
	"time"

	"github.com/google/uuid"
)

type BookingService interface {
	// Create validates the request, resolves the property and records the
	// booking.
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error)
	// Record stores a booking for an already resolved property.
	Record(ctx context.Context, propertyID string, snapshot model.PropertySnapshot, nightlyPrice float64, checkIn, checkOut string, guests int) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	// List returns every booking, newest first.
	List(ctx context.Context) ([]model.Booking, error)
	// Delete cancels a booking. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// PropertyLookup resolves a property for a new booking.
type PropertyLookup interface {
	GetByID(ctx context.Context, id string) (*model.Property, error)
}

type Option func(*bookingService)

// WithClock replaces the clock used for BookedAt.
func WithClock(now func() time.Time) Option {
	return func(s *bookingService) {
		s.now = now
	}
}

// WithIDGenerator replaces the booking id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *bookingService) {
		s.newID = newID
	}
}

type bookingService struct {
	repo       repository.BookingRepository
	properties PropertyLookup
	validator  *validator.BookingValidator
	publisher  events.EventPublisher
	cfg        *config.Config
	now        func() time.Time
	newID      func() string
}

func NewBookingService(
	repo repository.BookingRepository,
	properties PropertyLookup,
	validator *validator.BookingValidator,
	publisher events.EventPublisher,
	cfg *config.Config,
	opts ...Option,
) BookingService {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	s := &bookingService{
		repo:       repo,
		properties: properties,
		validator:  validator,
		publisher:  publisher,
		cfg:        cfg,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if req == nil {
		return nil, apperrors.InvalidInput("Booking request cannot be empty")
	}

	stay, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, stay.PropertyID)
	if err != nil {
		return nil, err
	}

	return s.record(ctx, property.ID, model.SnapshotOf(*property), property.Price, stay)
}

func (s *bookingService) Record(
	ctx context.Context,
	propertyID string,
	snapshot model.PropertySnapshot,
	nightlyPrice float64,
	checkIn, checkOut string,
	guests int,
) (*model.Booking, error) {
	stay, err := s.validate(&model.CreateBookingRequest{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
	})
	if err != nil {
		return nil, err
	}
	if nightlyPrice < 0 {
		return nil, apperrors.InvalidInput("Nightly price cannot be negative")
	}

	return s.record(ctx, propertyID, snapshot, nightlyPrice, stay)
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id).WithCause(err)
		}
		s.cfg.Log.Error("Failed to retrieve booking", "id", id, "error", err)
		return nil, apperrors.Storage("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) List(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Storage("Failed to retrieve bookings", err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookedAt.After(bookings[j].BookedAt)
	})
	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Storage("Failed to delete booking", err)
	}
	if !deleted {
		s.cfg.Log.Debug("Booking already absent", "id", id)
		return nil
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	if err := s.publisher.BookingCancelled(ctx, id); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "event", events.EventBookingCancelled, "id", id, "error", err)
	}
	return nil
}

func (s *bookingService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// --- Helpers ---

func (s *bookingService) validate(req *model.CreateBookingRequest) (*validator.Stay, error) {
	stay, err := s.validator.Validate(req)
	if err == nil {
		return stay, nil
	}

	var reqErr *validator.RequestError
	if !errors.As(err, &reqErr) {
		return nil, apperrors.Internal("Failed to validate booking", err)
	}

	s.cfg.Log.Warn("Booking validation failed", "reason", reqErr.Reason.Error(), "property_id", req.PropertyID)
	return nil, apperrors.Validation(reqErr.Reason.Error(), map[string]any{
		"reason": reqErr.Reason.Error(),
		"errors": reqErr.Fields,
	}).WithCause(reqErr)
}

func (s *bookingService) record(
	ctx context.Context,
	propertyID string,
	snapshot model.PropertySnapshot,
	nightlyPrice float64,
	stay *validator.Stay,
) (*model.Booking, error) {
	booking := model.Booking{
		ID:               s.newID(),
		PropertyID:       propertyID,
		PropertySnapshot: snapshot,
		CheckIn:          stay.CheckIn,
		CheckOut:         stay.CheckOut,
		Guests:           stay.Guests,
		TotalPrice:       pricing.Total(stay.Nights, nightlyPrice),
		BookedAt:         s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, &booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "property_id", propertyID, "error", err)
		return nil, apperrors.Storage("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"property_id", booking.PropertyID,
		"check_in", booking.CheckIn.String(),
		"check_out", booking.CheckOut.String(),
		"nights", stay.Nights,
		"total_price", booking.TotalPrice,
	)

	if err := s.publisher.BookingCreated(ctx, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "event", events.EventBookingCreated, "id", booking.ID, "error", err)
	}
	return &booking, nil
}
