package validator

import (
	"errors"
	bookingserrors "rentals/internal/bookings/errors"
	"rentals/pkg/logger"
	"rentals/pkg/model"
	"testing"
)

func TestValidate(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	tests := []struct {
		name       string
		req        model.CreateBookingRequest
		wantReason error
		wantNights int
	}{
		{
			name:       "valid",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckIn: "2025-06-01", CheckOut: "2025-06-05", Guests: 2},
			wantNights: 4,
		},
		{
			name:       "missing check-in",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckOut: "2025-06-05", Guests: 2},
			wantReason: bookingserrors.ErrMissingDates,
		},
		{
			name:       "missing both dates and no guests",
			req:        model.CreateBookingRequest{PropertyID: "1", Guests: 0},
			wantReason: bookingserrors.ErrMissingDates,
		},
		{
			name:       "malformed date beats guests",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckIn: "06/01/2025", CheckOut: "2025-06-05", Guests: 0},
			wantReason: bookingserrors.ErrInvalidDate,
		},
		{
			name:       "impossible calendar date",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckIn: "2025-02-30", CheckOut: "2025-03-02", Guests: 1},
			wantReason: bookingserrors.ErrInvalidDate,
		},
		{
			name:       "guests beat nights",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckIn: "2025-06-05", CheckOut: "2025-06-05", Guests: 0},
			wantReason: bookingserrors.ErrInvalidGuests,
		},
		{
			name:       "negative guests",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckIn: "2025-06-01", CheckOut: "2025-06-05", Guests: -3},
			wantReason: bookingserrors.ErrInvalidGuests,
		},
		{
			name:       "same day",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckIn: "2025-06-05", CheckOut: "2025-06-05", Guests: 1},
			wantReason: bookingserrors.ErrNonPositiveNights,
		},
		{
			name:       "check-out before check-in",
			req:        model.CreateBookingRequest{PropertyID: "1", CheckIn: "2025-06-05", CheckOut: "2025-06-01", Guests: 1},
			wantReason: bookingserrors.ErrNonPositiveNights,
		},
		{
			name:       "missing property",
			req:        model.CreateBookingRequest{CheckIn: "2025-06-01", CheckOut: "2025-06-02", Guests: 1},
			wantReason: bookingserrors.ErrMissingProperty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			stay, err := v.Validate(&req)

			if tt.wantReason == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				if stay.Nights != tt.wantNights {
					t.Errorf("Nights = %d, want %d", stay.Nights, tt.wantNights)
				}
				return
			}

			if !errors.Is(err, tt.wantReason) {
				t.Fatalf("Validate() error = %v, want reason %v", err, tt.wantReason)
			}
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected *RequestError, got %T", err)
			}
			if stay != nil {
				t.Errorf("expected no stay on failure")
			}
		})
	}
}

func TestRequestError_Message(t *testing.T) {
	err := &RequestError{
		Reason: bookingserrors.ErrInvalidGuests,
		Fields: ValidationErrors{{Field: "Guests", Message: "Guests must be at least 1"}},
	}
	want := "at least one guest is required (validation failed: 1 error(s): [Guests: Guests must be at least 1])"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
