package model

import (
	"time"
)

type Booking struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	PropertySnapshot
	CheckIn    Date      `json:"checkIn"`
	CheckOut   Date      `json:"checkOut"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"totalPrice"`
	BookedAt   time.Time `json:"bookedAt"`
}

// CreateBookingRequest is the user-supplied half of a booking. Dates stay as
// strings until validation so a missing date can be told apart from a bad one.
type CreateBookingRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	CheckIn    string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests" validate:"min=1"`
}

type Quote struct {
	PropertyID string  `json:"propertyId"`
	CheckIn    Date    `json:"checkIn"`
	CheckOut   Date    `json:"checkOut"`
	Nights     int     `json:"nights"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`
}
