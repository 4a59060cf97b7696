package model

const (
	TypeHouse     = "house"
	TypeApartment = "apartment"
	TypeCondo     = "condo"
	TypeVilla     = "villa"
	TypeAll       = "all"
)

var PropertyTypes = []string{TypeHouse, TypeApartment, TypeCondo, TypeVilla}

type Property struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=2,max=200"`
	Location    string   `json:"location" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Type        string   `json:"type" validate:"required,oneof=house apartment condo villa"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"gte=0"`
	Area        float64  `json:"area" validate:"gt=0"`
	Image       string   `json:"image" validate:"required"`
	Images      []string `json:"images" validate:"required,min=1,dive,required"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured,omitempty"`
}

// PropertySnapshot holds the property attributes copied into a booking when
// it is made. It is never re-synced with the catalog.
type PropertySnapshot struct {
	Title string `json:"propertyTitle"`
	Image string `json:"propertyImage"`
}

func SnapshotOf(p Property) PropertySnapshot {
	return PropertySnapshot{
		Title: p.Title,
		Image: p.Image,
	}
}

func IsPropertyType(t string) bool {
	for _, known := range PropertyTypes {
		if known == t {
			return true
		}
	}
	return false
}
