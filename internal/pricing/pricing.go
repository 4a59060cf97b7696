// Package pricing derives night counts and totals for a stay.
package pricing

import (
	"math"
	"rentals/pkg/model"
	"time"
)

const day = 24 * time.Hour

// Nights returns the ceiling of the whole-day difference between checkIn and
// checkOut, clamped to 0 when checkOut is not strictly after checkIn.
func Nights(checkIn, checkOut model.Date) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	diff := checkOut.Sub(checkIn.Time)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

func Total(nights int, nightlyPrice float64) float64 {
	if nights <= 0 {
		return 0
	}
	return float64(nights) * nightlyPrice
}

func NewQuote(propertyID string, nightlyPrice float64, checkIn, checkOut model.Date) model.Quote {
	nights := Nights(checkIn, checkOut)
	return model.Quote{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		Price:      nightlyPrice,
		Total:      Total(nights, nightlyPrice),
	}
}
