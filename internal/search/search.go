// Package search narrows the property catalog by user criteria.
package search

import (
	"rentals/pkg/model"
	"strings"
)

// Apply returns the properties matching every criterion in filters, in
// catalog order. It never mutates its input and never fails; an empty result
// means no match.
func Apply(properties []model.Property, filters model.SearchFilters) []model.Property {
	location := strings.ToLower(filters.Location)

	filtered := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if !matchesLocation(p, location) {
			continue
		}
		if !matchesType(p, filters.Type) {
			continue
		}
		if !matchesPrice(p, filters.MinPrice, filters.MaxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesLocation(p model.Property, location string) bool {
	if location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Location), location) ||
		strings.Contains(strings.ToLower(p.City), location)
}

func matchesType(p model.Property, propertyType string) bool {
	if propertyType == "" || propertyType == model.TypeAll {
		return true
	}
	return p.Type == propertyType
}

func matchesPrice(p model.Property, minPrice, maxPrice float64) bool {
	return p.Price >= minPrice && p.Price <= maxPrice
}

// Partition splits properties into featured and regular, keeping the input
// order inside each group.
func Partition(properties []model.Property) (featured, regular []model.Property) {
	featured = make([]model.Property, 0)
	regular = make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if p.Featured {
			featured = append(featured, p)
		} else {
			regular = append(regular, p)
		}
	}
	return featured, regular
}
