package repository

import (
	"context"
	"encoding/json"
	"fmt"
	propertieserrors "rentals/internal/properties/errors"
	"rentals/pkg/model"
	"rentals/pkg/store"
)

const (
	CatalogKey = "properties"
)

type PropertyRepository interface {
	// Load returns the stored catalog. found is false when nothing was ever
	// written; a value that does not decode yields ErrCorruptCatalog.
	Load(ctx context.Context) (properties []model.Property, found bool, err error)
	Save(ctx context.Context, properties []model.Property) error
	Ping(ctx context.Context) error
}

type storePropertyRepository struct {
	store store.Store
}

func NewStorePropertyRepository(s store.Store) PropertyRepository {
	return &storePropertyRepository{store: s}
}

func (r *storePropertyRepository) Load(ctx context.Context) ([]model.Property, bool, error) {
	raw, found, err := r.store.Get(ctx, CatalogKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read catalog: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var properties []model.Property
	if err := json.Unmarshal([]byte(raw), &properties); err != nil {
		return nil, true, fmt.Errorf("%w: %v", propertieserrors.ErrCorruptCatalog, err)
	}
	if properties == nil {
		properties = []model.Property{}
	}
	return properties, true, nil
}

func (r *storePropertyRepository) Save(ctx context.Context, properties []model.Property) error {
	if properties == nil {
		properties = []model.Property{}
	}
	data, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := r.store.Set(ctx, CatalogKey, string(data)); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func (r *storePropertyRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
