package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service/cache"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrPricingUnavailable is returned when the active pricing cannot be read.
	ErrPricingUnavailable = errors.New("pricing settings unavailable")
)

// PricingCacheTTL is how long the active pricing is reused before it is read again.
const PricingCacheTTL = 30 * time.Second

const activePricingKey = "active"

// PricingProvider supplies the pricing applied to cart totals.
type PricingProvider interface {
	Current(ctx context.Context) cart.Pricing
}

// PricingSource supplies the active pricing or reports why it cannot.
type PricingSource interface {
	Active(ctx context.Context) (cart.Pricing, error)
}

// PricingSettingsService manages the versioned pricing settings.
type PricingSettingsService interface {
	PricingProvider
	PricingSource
	GetActive(ctx context.Context) (*repository.PricingSettings, error)
	Create(ctx context.Context, p cart.Pricing, createdBy string) (*repository.PricingSettings, error)
	Update(ctx context.Context, id primitive.ObjectID, p cart.Pricing, updatedBy string) (*repository.PricingSettings, error)
	List(ctx context.Context, limit int) ([]repository.PricingSettings, error)
	Stop()
}

// PricingSettingsServiceImpl implements PricingSettingsService.
type PricingSettingsServiceImpl struct {
	repo     repository.PricingSettingsRepositoryInterface
	defaults cart.Pricing
	cache    *cache.TTLCache[string, cart.Pricing]
}

// NewPricingSettingsService creates a pricing settings service. defaults apply
// while no settings document is active or the repository is unavailable.
func NewPricingSettingsService(repo repository.PricingSettingsRepositoryInterface, defaults cart.Pricing) PricingSettingsService {
	return &PricingSettingsServiceImpl{
		repo:     repo,
		defaults: defaults,
		cache:    cache.NewTTLCache[string, cart.Pricing]("pricing", 1, PricingCacheTTL),
	}
}

// Current returns the active pricing, falling back to the defaults.
func (s *PricingSettingsServiceImpl) Current(ctx context.Context) cart.Pricing {
	p, err := s.Active(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load pricing settings, using defaults")
		return s.defaults
	}
	return p
}

// Active returns the active pricing. The defaults apply when no repository is
// configured or no settings document is active, but a failing repository is
// an error wrapping ErrPricingUnavailable.
func (s *PricingSettingsServiceImpl) Active(ctx context.Context) (cart.Pricing, error) {
	if s.repo == nil {
		return s.defaults, nil
	}
	p, err := s.cache.GetOrLoad(activePricingKey, func() (cart.Pricing, error) {
		settings, err := s.repo.GetActive(ctx)
		if err != nil {
			return cart.Pricing{}, err
		}
		if settings == nil {
			return s.defaults, nil
		}
		return settings.Pricing(), nil
	})
	if err != nil {
		return cart.Pricing{}, fmt.Errorf("%w: %w", ErrPricingUnavailable, err)
	}
	return p, nil
}

func (s *PricingSettingsServiceImpl) GetActive(ctx context.Context) (*repository.PricingSettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetActive(ctx)
}

func (s *PricingSettingsServiceImpl) Create(ctx context.Context, p cart.Pricing, createdBy string) (*repository.PricingSettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	settings, err := s.repo.Create(ctx, p, createdBy)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(activePricingKey)
	return settings, nil
}

func (s *PricingSettingsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, p cart.Pricing, updatedBy string) (*repository.PricingSettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	settings, err := s.repo.Update(ctx, id, p, updatedBy)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(activePricingKey)
	return settings, nil
}

func (s *PricingSettingsServiceImpl) List(ctx context.Context, limit int) ([]repository.PricingSettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

// Stop releases the settings cache.
func (s *PricingSettingsServiceImpl) Stop() {
	s.cache.Stop()
}
