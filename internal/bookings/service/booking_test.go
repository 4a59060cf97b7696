package service

import (
	"context"
	"errors"
	"fmt"
	bookingserrors "rentals/internal/bookings/errors"
	"rentals/internal/bookings/repository"
	"rentals/internal/bookings/validator"
	"rentals/pkg/config"
	apperrors "rentals/pkg/errors"
	"rentals/pkg/logger"
	"rentals/pkg/model"
	"rentals/pkg/store"
	"testing"
	"time"
)

// ────────────────────────────────────────────────
// Test doubles
// ────────────────────────────────────────────────

type mockPropertyLookup struct {
	properties map[string]model.Property
}

func (m *mockPropertyLookup) GetByID(ctx context.Context, id string) (*model.Property, error) {
	p, ok := m.properties[id]
	if !ok {
		return nil, apperrors.NotFoundWithID("Property", id)
	}
	return &p, nil
}

type mockPublisher struct {
	created   []model.Booking
	cancelled []string
	err       error
}

func (m *mockPublisher) BookingCreated(ctx context.Context, booking model.Booking) error {
	m.created = append(m.created, booking)
	return m.err
}

func (m *mockPublisher) BookingCancelled(ctx context.Context, bookingID string) error {
	m.cancelled = append(m.cancelled, bookingID)
	return m.err
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type fixture struct {
	svc        BookingService
	store      *store.MemoryStore
	properties *mockPropertyLookup
	publisher  *mockPublisher
	clock      *fakeClock
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	log := logger.Discard()
	f := &fixture{
		store: store.NewMemoryStore(),
		properties: &mockPropertyLookup{properties: map[string]model.Property{
			"2": {ID: "2", Title: "Downtown Loft", Image: "loft.jpg", Price: 320},
			"6": {ID: "6", Title: "Desert Villa", Image: "villa.jpg", Price: 1200},
		}},
		publisher: &mockPublisher{},
		clock:     &fakeClock{t: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)},
	}
	opts = append([]Option{WithClock(f.clock.Now)}, opts...)
	f.svc = NewBookingService(
		repository.NewStoreBookingRepository(f.store),
		f.properties,
		validator.NewBookingValidator(log),
		f.publisher,
		&config.Config{Log: log},
		opts...,
	)
	return f
}

func (f *fixture) ledgerWritten(t *testing.T) bool {
	t.Helper()
	_, found, err := f.store.Get(context.Background(), repository.LedgerKey)
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	return found
}

func validRequest() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{PropertyID: "2", CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 2}
}

// ────────────────────────────────────────────────
// Create
// ────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if booking.ID == "" {
		t.Error("expected generated id")
	}
	if booking.TotalPrice != 960 {
		t.Errorf("TotalPrice = %v, want 960", booking.TotalPrice)
	}
	if booking.Title != "Downtown Loft" || booking.Image != "loft.jpg" {
		t.Errorf("snapshot = %+v", booking.PropertySnapshot)
	}
	if !booking.BookedAt.Equal(f.clock.t) {
		t.Errorf("BookedAt = %v, want %v", booking.BookedAt, f.clock.t)
	}
	if booking.CheckIn.String() != "2025-06-01" || booking.CheckOut.String() != "2025-06-04" {
		t.Errorf("dates = %s..%s", booking.CheckIn, booking.CheckOut)
	}

	stored, err := f.svc.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.ID != booking.ID || stored.TotalPrice != booking.TotalPrice {
		t.Errorf("GetByID() = %+v, want %+v", stored, booking)
	}

	if len(f.publisher.created) != 1 || f.publisher.created[0].ID != booking.ID {
		t.Errorf("expected one booking.created event, got %+v", f.publisher.created)
	}
}

func TestCreate_ValidationFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name       string
		req        model.CreateBookingRequest
		wantReason error
	}{
		{name: "missing dates", req: model.CreateBookingRequest{PropertyID: "2", Guests: 2}, wantReason: bookingserrors.ErrMissingDates},
		{name: "bad date", req: model.CreateBookingRequest{PropertyID: "2", CheckIn: "tomorrow", CheckOut: "2025-06-04", Guests: 2}, wantReason: bookingserrors.ErrInvalidDate},
		{name: "no guests", req: model.CreateBookingRequest{PropertyID: "2", CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 0}, wantReason: bookingserrors.ErrInvalidGuests},
		{name: "zero nights", req: model.CreateBookingRequest{PropertyID: "2", CheckIn: "2025-06-04", CheckOut: "2025-06-04", Guests: 1}, wantReason: bookingserrors.ErrNonPositiveNights},
		{name: "reversed dates", req: model.CreateBookingRequest{PropertyID: "2", CheckIn: "2025-06-04", CheckOut: "2025-06-01", Guests: 1}, wantReason: bookingserrors.ErrNonPositiveNights},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := tt.req

			_, err := f.svc.Create(context.Background(), &req)
			if !apperrors.HasCode(err, apperrors.CodeValidation) {
				t.Fatalf("Create() error = %v, want validation error", err)
			}
			if !errors.Is(err, tt.wantReason) {
				t.Errorf("Create() error = %v, want reason %v", err, tt.wantReason)
			}
			if reason := apperrors.AsAppError(err).Details["reason"]; reason != tt.wantReason.Error() {
				t.Errorf("details reason = %v", reason)
			}
			if f.ledgerWritten(t) {
				t.Error("ledger was written for an invalid request")
			}
			if len(f.publisher.created) != 0 {
				t.Error("event published for an invalid request")
			}
		})
	}
}

func TestCreate_UnknownProperty(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.PropertyID = "404"

	_, err := f.svc.Create(context.Background(), req)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("Create() error = %v, want not found", err)
	}
	if f.ledgerWritten(t) {
		t.Error("ledger was written for an unknown property")
	}
}

func TestCreate_SnapshotIsNotResynced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	p := f.properties.properties["2"]
	p.Title = "Renamed Loft"
	p.Price = 999
	f.properties.properties["2"] = p

	stored, err := f.svc.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Title != "Downtown Loft" || stored.TotalPrice != 960 {
		t.Errorf("stored booking changed with the property: %+v", stored)
	}
}

func TestCreate_UniqueIDsWithinSameInstant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seen := map[string]bool{}

	for i := 0; i < 20; i++ {
		b, err := f.svc.Create(ctx, validRequest())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate id %s", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestCreate_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker down")

	if _, err := f.svc.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("Create() error = %v, publish failures must not fail the booking", err)
	}
	if !f.ledgerWritten(t) {
		t.Error("booking was not persisted")
	}
}

func TestCreate_CorruptLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_ = f.store.Set(ctx, repository.LedgerKey, "not json")

	_, err := f.svc.Create(ctx, validRequest())
	if !apperrors.HasCode(err, apperrors.CodeStorage) {
		t.Fatalf("Create() error = %v, want storage error", err)
	}
	if !errors.Is(err, bookingserrors.ErrCorruptLedger) {
		t.Errorf("expected ErrCorruptLedger in chain")
	}
	raw, _, _ := f.store.Get(ctx, repository.LedgerKey)
	if raw != "not json" {
		t.Errorf("corrupt ledger was overwritten: %q", raw)
	}
}

// ────────────────────────────────────────────────
// Record
// ────────────────────────────────────────────────

func TestRecord(t *testing.T) {
	f := newFixture(t)
	snapshot := model.PropertySnapshot{Title: "Lake Cabin", Image: "cabin.jpg"}

	booking, err := f.svc.Record(context.Background(), "99", snapshot, 150, "2024-02-27", "2024-03-01", 3)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	// 2024 is a leap year: Feb 27, 28, 29.
	if booking.TotalPrice != 450 {
		t.Errorf("TotalPrice = %v, want 450", booking.TotalPrice)
	}
	if booking.PropertySnapshot != snapshot {
		t.Errorf("snapshot = %+v", booking.PropertySnapshot)
	}

	if _, err := f.svc.Record(context.Background(), "99", snapshot, -1, "2024-02-27", "2024-03-01", 3); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("negative price error = %v", err)
	}
}

// ────────────────────────────────────────────────
// List / GetByID / Delete
// ────────────────────────────────────────────────

func TestList_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		b, err := f.svc.Create(ctx, validRequest())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, b.ID)
		f.clock.Advance(time.Minute)
	}

	list, err := f.svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 3 || list[0].ID != ids[2] || list[1].ID != ids[1] || list[2].ID != ids[0] {
		t.Errorf("List() order = %v, want %v reversed", bookingIDs(list), ids)
	}
}

func TestList_Empty(t *testing.T) {
	f := newFixture(t)
	list, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %v, want empty", list)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(context.Background(), "missing")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("GetByID() error = %v, want not found", err)
	}
	if !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound in chain")
	}
}

func TestDelete_IsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	keep, _ := f.svc.Create(ctx, validRequest())
	drop, _ := f.svc.Create(ctx, validRequest())

	if err := f.svc.Delete(ctx, drop.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := f.svc.Delete(ctx, drop.ID); err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if err := f.svc.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("Delete(unknown) error = %v", err)
	}

	list, _ := f.svc.List(ctx)
	if len(list) != 1 || list[0].ID != keep.ID {
		t.Errorf("remaining = %v, want [%s]", bookingIDs(list), keep.ID)
	}
	if len(f.publisher.cancelled) != 1 || f.publisher.cancelled[0] != drop.ID {
		t.Errorf("cancel events = %v, want exactly one for %s", f.publisher.cancelled, drop.ID)
	}
}

func TestDelete_EmptyID(t *testing.T) {
	f := newFixture(t)
	if err := f.svc.Delete(context.Background(), ""); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("Delete(\"\") error = %v, want invalid input", err)
	}
}

func TestWithIDGenerator(t *testing.T) {
	n := 0
	f := newFixture(t, WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))

	b, err := f.svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if b.ID != "id-1" {
		t.Errorf("ID = %q, want id-1", b.ID)
	}
}

func bookingIDs(bookings []model.Booking) []string {
	ids := make([]string, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	return ids
}
