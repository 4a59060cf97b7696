package model

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000

	PriceRangeAll     = "all"
	PriceRangeBudget  = "0-500"
	PriceRangeMid     = "500-1000"
	PriceRangePremium = "1000+"
)

type SearchFilters struct {
	Location string  `json:"location"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
	Type     string  `json:"type"`
}

func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		Location: "",
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		Type:     TypeAll,
	}
}

// PriceBounds resolves one of the named price ranges offered by the search
// bar. Unknown names resolve like "all".
func PriceBounds(priceRange string) (float64, float64) {
	switch priceRange {
	case PriceRangeBudget:
		return 0, 500
	case PriceRangeMid:
		return 500, 1000
	case PriceRangePremium:
		return 1000, DefaultMaxPrice
	default:
		return DefaultMinPrice, DefaultMaxPrice
	}
}

type SearchResult struct {
	Featured   []Property `json:"featured"`
	Regular    []Property `json:"regular"`
	TotalCount int        `json:"total_count"`
}
