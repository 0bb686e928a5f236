package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service/cache"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSlugTaken is returned when a slug is already used by another document.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrInvalidProduct is returned when product fields fail validation.
	ErrInvalidProduct = errors.New("invalid product")
)

// CategoryCacheTTL bounds how stale the category listing may be.
const CategoryCacheTTL = 5 * time.Minute

const (
	defaultPageSize = 20
	maxPageSize     = 100
	allCategories   = "all"
)

// StockSource resolves the current catalog state of a product. The cart
// reads the stock ceiling from it on every mutation.
type StockSource interface {
	Product(ctx context.Context, productID string) (*model.Product, error)
}

// CatalogService manages products and categories.
type CatalogService interface {
	StockSource
	GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error)
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]*model.Product, int64, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
	Stop()
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	products   repository.ProductRepositoryInterface
	categories repository.CategoryRepositoryInterface
	cache      *cache.TTLCache[string, []*model.Category]
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	categoryTTL time.Duration
}

// WithCategoryCacheTTL overrides how long the category listing is cached.
func WithCategoryCacheTTL(ttl time.Duration) CatalogOption {
	return func(o *catalogOptions) {
		if ttl > 0 {
			o.categoryTTL = ttl
		}
	}
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	products repository.ProductRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	opts ...CatalogOption,
) CatalogService {
	o := catalogOptions{categoryTTL: CategoryCacheTTL}
	for _, opt := range opts {
		opt(&o)
	}
	return &CatalogServiceImpl{
		products:   products,
		categories: categories,
		cache:      cache.NewTTLCache[string, []*model.Category]("categories", 1, o.categoryTTL),
	}
}

// Product returns the product with the given hex ID.
func (s *CatalogServiceImpl) Product(ctx context.Context, productID string) (*model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetProduct looks a product up by ID, falling back to its slug. Inactive
// products are hidden.
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, idOrSlug string) (*model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}

	var (
		product *model.Product
		err     error
	)
	if id, hexErr := primitive.ObjectIDFromHex(idOrSlug); hexErr == nil {
		product, err = s.products.FindByID(ctx, id)
	} else {
		product, err = s.products.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListProducts returns one page of products and the total match count.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context, filter model.ProductFilter) ([]*model.Product, int64, error) {
	if s.products == nil {
		return nil, 0, ErrRepositoryNotConfigured
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	filter.Search = strings.TrimSpace(filter.Search)

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, product *model.Product) error {
	if s.products == nil {
		return ErrRepositoryNotConfigured
	}
	if err := prepareProduct(product); err != nil {
		return err
	}
	if err := s.products.Create(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugTaken
		}
		return err
	}
	log.Info().Str("product_id", product.ID.Hex()).Str("slug", product.Slug).Msg("Product created")
	return nil
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, product *model.Product) error {
	if s.products == nil {
		return ErrRepositoryNotConfigured
	}
	if err := prepareProduct(product); err != nil {
		return err
	}
	err := s.products.Update(ctx, product)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrProductNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrSlugTaken
	}
	return err
}

// DeleteProduct deactivates a product. It disappears from listings and can
// no longer be added to carts.
func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	if s.products == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}
	if err := s.products.Delete(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProductNotFound
		}
		return err
	}
	log.Info().Str("product_id", id).Msg("Product deactivated")
	return nil
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if s.categories == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.cache.GetOrLoad(allCategories, func() ([]*model.Category, error) {
		return s.categories.List(ctx)
	})
}

func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	if s.categories == nil {
		return ErrRepositoryNotConfigured
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	if err := s.categories.Create(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugTaken
		}
		return err
	}
	s.cache.Invalidate(allCategories)
	return nil
}

func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	if s.categories == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrCategoryNotFound
	}
	if err := s.categories.Delete(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCategoryNotFound
		}
		return err
	}
	s.cache.Invalidate(allCategories)
	return nil
}

// Stop releases the category cache.
func (s *CatalogServiceImpl) Stop() {
	s.cache.Stop()
}

func prepareProduct(p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case p.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	} else {
		p.Slug = Slugify(p.Slug)
	}
	if p.Slug == "" {
		return fmt.Errorf("%w: name has no usable characters for a slug", ErrInvalidProduct)
	}
	return nil
}

// Slugify lowercases s and joins its letter and digit runs with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
