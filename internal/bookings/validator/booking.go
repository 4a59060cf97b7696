package validator

import (
	"errors"
	"fmt"
	bookingserrors "rentals/internal/bookings/errors"
	"rentals/internal/pricing"
	"rentals/pkg/logger"
	"rentals/pkg/model"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// RequestError reports the first precondition a booking request failed.
// Reason is one of the sentinels in internal/bookings/errors.
type RequestError struct {
	Reason error
	Fields ValidationErrors
}

func (e *RequestError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Reason.Error(), e.Fields.Error())
}

func (e *RequestError) Unwrap() error {
	return e.Reason
}

// Stay is a request that passed validation, with its dates parsed.
type Stay struct {
	PropertyID string
	CheckIn    model.Date
	CheckOut   model.Date
	Guests     int
	Nights     int
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

// Validate checks a request in a fixed order: dates present, dates well
// formed, at least one guest, at least one night. Only the first failing
// group is reported.
func (v *BookingValidator) Validate(req *model.CreateBookingRequest) (*Stay, error) {
	byField := map[string]ValidationErrors{}
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return nil, err
		}
		for _, fe := range translateValidationErrors(validationErrs) {
			byField[fe.Field] = append(byField[fe.Field], fe)
		}
	}

	if req.CheckIn == "" || req.CheckOut == "" {
		return nil, &RequestError{
			Reason: bookingserrors.ErrMissingDates,
			Fields: append(byField["CheckIn"], byField["CheckOut"]...),
		}
	}

	checkIn, errIn := model.ParseDate(req.CheckIn)
	checkOut, errOut := model.ParseDate(req.CheckOut)
	if errIn != nil || errOut != nil {
		return nil, &RequestError{
			Reason: bookingserrors.ErrInvalidDate,
			Fields: append(byField["CheckIn"], byField["CheckOut"]...),
		}
	}

	if req.Guests < 1 {
		return nil, &RequestError{
			Reason: bookingserrors.ErrInvalidGuests,
			Fields: byField["Guests"],
		}
	}

	nights := pricing.Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, &RequestError{
			Reason: bookingserrors.ErrNonPositiveNights,
			Fields: ValidationErrors{{Field: "CheckOut", Message: "CheckOut must be after CheckIn"}},
		}
	}

	if req.PropertyID == "" {
		return nil, &RequestError{
			Reason: bookingserrors.ErrMissingProperty,
			Fields: byField["PropertyID"],
		}
	}

	return &Stay{
		PropertyID: req.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		Nights:     nights,
	}, nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("%s must be a date formatted as %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
