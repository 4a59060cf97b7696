package service

import "rentals/pkg/model"

// DefaultCatalog returns the fixed dataset written on first run. Each call
// returns a fresh copy.
func DefaultCatalog() []model.Property {
	return []model.Property{
		{
			ID:          "1",
			Title:       "Modern Beachfront Villa",
			Location:    "27 Ocean Drive, Malibu, CA",
			City:        "Malibu",
			Price:       850,
			Type:        model.TypeVilla,
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        3200,
			Image:       "/images/malibu-villa-1.jpg",
			Images:      []string{"/images/malibu-villa-1.jpg", "/images/malibu-villa-2.jpg", "/images/malibu-villa-3.jpg"},
			Description: "Floor-to-ceiling windows, a private deck and direct access to the sand.",
			Amenities:   []string{"WiFi", "Pool", "Ocean View", "Parking", "Air Conditioning"},
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Downtown Loft Apartment",
			Location:    "410 Market Street, San Francisco, CA",
			City:        "San Francisco",
			Price:       320,
			Type:        model.TypeApartment,
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        1100,
			Image:       "/images/sf-loft-1.jpg",
			Images:      []string{"/images/sf-loft-1.jpg", "/images/sf-loft-2.jpg"},
			Description: "Exposed brick, high ceilings and a short walk to the Ferry Building.",
			Amenities:   []string{"WiFi", "Kitchen", "Washer", "Gym"},
			Featured:    true,
		},
		{
			ID:          "3",
			Title:       "Cozy Mountain Cabin House",
			Location:    "88 Pine Ridge Road, Aspen, CO",
			City:        "Aspen",
			Price:       450,
			Type:        model.TypeHouse,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1800,
			Image:       "/images/aspen-cabin-1.jpg",
			Images:      []string{"/images/aspen-cabin-1.jpg", "/images/aspen-cabin-2.jpg", "/images/aspen-cabin-3.jpg"},
			Description: "Wood-burning fireplace, hot tub and ski-in access in winter.",
			Amenities:   []string{"WiFi", "Fireplace", "Hot Tub", "Parking"},
		},
		{
			ID:          "4",
			Title:       "Lakeview Condo",
			Location:    "1200 Lake Shore Drive, Chicago, IL",
			City:        "Chicago",
			Price:       275,
			Type:        model.TypeCondo,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        1250,
			Image:       "/images/chicago-condo-1.jpg",
			Images:      []string{"/images/chicago-condo-1.jpg", "/images/chicago-condo-2.jpg"},
			Description: "Twentieth-floor condo with sweeping views of Lake Michigan.",
			Amenities:   []string{"WiFi", "Lake View", "Doorman", "Gym", "Air Conditioning"},
		},
		{
			ID:          "5",
			Title:       "Historic Brownstone House",
			Location:    "15 Beacon Street, Boston, MA",
			City:        "Boston",
			Price:       520,
			Type:        model.TypeHouse,
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        2600,
			Image:       "/images/boston-brownstone-1.jpg",
			Images:      []string{"/images/boston-brownstone-1.jpg", "/images/boston-brownstone-2.jpg"},
			Description: "Restored nineteenth-century brownstone steps from the Public Garden.",
			Amenities:   []string{"WiFi", "Kitchen", "Garden", "Washer", "Dryer"},
		},
		{
			ID:          "6",
			Title:       "Luxury Desert Villa",
			Location:    "3 Canyon View Lane, Scottsdale, AZ",
			City:        "Scottsdale",
			Price:       1200,
			Type:        model.TypeVilla,
			Bedrooms:    5,
			Bathrooms:   5,
			Area:        4800,
			Image:       "/images/scottsdale-villa-1.jpg",
			Images:      []string{"/images/scottsdale-villa-1.jpg", "/images/scottsdale-villa-2.jpg", "/images/scottsdale-villa-3.jpg"},
			Description: "Infinity pool, outdoor kitchen and unobstructed mountain sunsets.",
			Amenities:   []string{"WiFi", "Pool", "Hot Tub", "Parking", "Outdoor Kitchen", "Air Conditioning"},
			Featured:    true,
		},
		{
			ID:          "7",
			Title:       "Studio Apartment near Central Park",
			Location:    "240 West 61st Street, New York, NY",
			City:        "New York",
			Price:       190,
			Type:        model.TypeApartment,
			Bedrooms:    0,
			Bathrooms:   1,
			Area:        480,
			Image:       "/images/nyc-studio-1.jpg",
			Images:      []string{"/images/nyc-studio-1.jpg"},
			Description: "Compact, bright studio two blocks from the park.",
			Amenities:   []string{"WiFi", "Kitchenette", "Elevator"},
		},
		{
			ID:          "8",
			Title:       "Waterfront Condo",
			Location:    "500 Brickell Key Drive, Miami, FL",
			City:        "Miami",
			Price:       640,
			Type:        model.TypeCondo,
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1700,
			Image:       "/images/miami-condo-1.jpg",
			Images:      []string{"/images/miami-condo-1.jpg", "/images/miami-condo-2.jpg"},
			Description: "Wraparound balcony over Biscayne Bay with marina access.",
			Amenities:   []string{"WiFi", "Pool", "Balcony", "Gym", "Parking"},
		},
	}
}
