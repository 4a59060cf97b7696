package service

import (
	"context"
	"errors"
	"rentals/internal/pricing"
	propertieserrors "rentals/internal/properties/errors"
	"rentals/internal/properties/repository"
	"rentals/internal/properties/validator"
	"rentals/internal/search"
	"rentals/pkg/config"
	apperrors "rentals/pkg/errors"
	"rentals/pkg/model"
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"
)

const catalogCacheKey = "catalog"

type PropertyService interface {
	EnsureSeeded(ctx context.Context) error
	List(ctx context.Context) ([]model.Property, error)
	GetByID(ctx context.Context, id string) (*model.Property, error)
	Search(ctx context.Context, filters model.SearchFilters) (*model.SearchResult, error)
	Quote(ctx context.Context, id string, checkIn, checkOut string) (*model.Quote, error)
	Ping(ctx context.Context) error
	Close()
}

type propertyService struct {
	repo      repository.PropertyRepository
	validator *validator.PropertyValidator
	cfg       *config.Config
	cache     *ccache.Cache[[]model.Property]
	defaults  func() []model.Property
	seedMu    sync.Mutex
}

func NewPropertyService(
	repo repository.PropertyRepository,
	validator *validator.PropertyValidator,
	cfg *config.Config,
) PropertyService {
	s := &propertyService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
		defaults:  DefaultCatalog,
	}
	if cfg.CatalogCacheTTL > 0 {
		s.cache = ccache.New(ccache.Configure[[]model.Property]().MaxSize(16))
	}
	return s
}

// EnsureSeeded writes the default catalog when none is stored. A stored
// catalog that cannot be decoded is replaced by the defaults.
func (s *propertyService) EnsureSeeded(ctx context.Context) error {
	_, err := s.seedIfNeeded(ctx)
	return err
}

func (s *propertyService) seedIfNeeded(ctx context.Context) ([]model.Property, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	properties, found, err := s.repo.Load(ctx)
	switch {
	case err == nil && found:
		return properties, nil
	case err == nil:
		s.cfg.Log.Info("No catalog stored, seeding defaults")
	case errors.Is(err, propertieserrors.ErrCorruptCatalog):
		s.cfg.Log.Warn("Stored catalog is corrupt, re-seeding defaults", "error", err)
	default:
		s.cfg.Log.Error("Failed to load catalog", "error", err)
		return nil, apperrors.Storage("Failed to load property catalog", err)
	}

	defaults := s.defaults()
	if err := s.validator.ValidateCatalog(defaults); err != nil {
		return nil, apperrors.Internal("Default catalog is invalid", errors.Join(propertieserrors.ErrInvalidSeed, err))
	}
	if err := s.repo.Save(ctx, defaults); err != nil {
		s.cfg.Log.Error("Failed to seed catalog", "error", err)
		return nil, apperrors.Storage("Failed to seed property catalog", err)
	}
	s.invalidate()

	s.cfg.Log.Info("Catalog seeded", "count", len(defaults))
	return defaults, nil
}

func (s *propertyService) List(ctx context.Context) ([]model.Property, error) {
	if cached := s.cached(); cached != nil {
		return cloneProperties(cached), nil
	}

	properties, found, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, propertieserrors.ErrCorruptCatalog) {
			s.cfg.Log.Error("Failed to list properties", "error", err)
			return nil, apperrors.Storage("Failed to load property catalog", err)
		}
		properties, err = s.seedIfNeeded(ctx)
		if err != nil {
			return nil, err
		}
	} else if !found {
		properties = []model.Property{}
	}

	s.remember(properties)
	return cloneProperties(properties), nil
}

func (s *propertyService) GetByID(ctx context.Context, id string) (*model.Property, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Property ID cannot be empty")
	}

	properties, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range properties {
		if properties[i].ID == id {
			p := properties[i]
			return &p, nil
		}
	}
	return nil, apperrors.NotFoundWithID("Property", id).WithCause(propertieserrors.ErrNotFound)
}

func (s *propertyService) Search(ctx context.Context, filters model.SearchFilters) (*model.SearchResult, error) {
	properties, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := search.Apply(properties, filters)
	featured, regular := search.Partition(matched)

	s.cfg.Log.Debug("Property search completed",
		"location", filters.Location,
		"type", filters.Type,
		"min_price", filters.MinPrice,
		"max_price", filters.MaxPrice,
		"count", len(matched),
	)
	return &model.SearchResult{
		Featured:   featured,
		Regular:    regular,
		TotalCount: len(matched),
	}, nil
}

func (s *propertyService) Quote(ctx context.Context, id string, checkIn, checkOut string) (*model.Quote, error) {
	if checkIn == "" || checkOut == "" {
		return nil, apperrors.InvalidInput("Both check_in and check_out are required")
	}
	in, err := model.ParseDate(checkIn)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid check_in format, must be YYYY-MM-DD")
	}
	out, err := model.ParseDate(checkOut)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid check_out format, must be YYYY-MM-DD")
	}

	property, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quote := pricing.NewQuote(property.ID, property.Price, in, out)
	return &quote, nil
}

func (s *propertyService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *propertyService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// --- Helpers ---

func (s *propertyService) cached() []model.Property {
	if s.cache == nil {
		return nil
	}
	item := s.cache.Get(catalogCacheKey)
	if item == nil || item.Expired() {
		return nil
	}
	return item.Value()
}

func (s *propertyService) remember(properties []model.Property) {
	if s.cache == nil {
		return
	}
	s.cache.Set(catalogCacheKey, cloneProperties(properties), s.cacheTTL())
}

func (s *propertyService) invalidate() {
	if s.cache != nil {
		s.cache.Delete(catalogCacheKey)
	}
}

func (s *propertyService) cacheTTL() time.Duration {
	return s.cfg.CatalogCacheTTL
}

// cloneProperties copies the records and their slices so callers cannot
// reach into the cache.
func cloneProperties(properties []model.Property) []model.Property {
	out := make([]model.Property, len(properties))
	for i, p := range properties {
		p.Images = append([]string(nil), p.Images...)
		p.Amenities = append([]string(nil), p.Amenities...)
		out[i] = p
	}
	return out
}
