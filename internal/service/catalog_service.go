package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

const productListCacheKey = "catalog:products"

const productNotFoundMsg = "Producto no encontrado"

// CreateProductInput carries the fields for a new product. Pointer fields
// fall back to defaults when nil (rating 4.5, reviews 0, featured false).
type CreateProductInput struct {
	Name          string
	Category      string
	Price         *float64
	Image         string
	Description   string
	Specs         []string
	Rating        *float64
	Reviews       *int
	Featured      *bool
	AffiliateLink string
}

// CatalogService orchestrates product CRUD over the store, with a
// best-effort Redis cache in front of the full listing.
type CatalogService struct {
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// CatalogDependencies bundles collaborators for the catalog service.
type CatalogDependencies struct {
	ProductRepo repository.ProductRepository
	Dispatcher  events.Dispatcher
	Cache       *redis.Client
	CacheTTL    time.Duration
	Logger      *zap.Logger
}

// NewCatalogService builds the service. Cache may be nil.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		products:   deps.ProductRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		logger:     logger,
	}
}

// List returns all products, serving from cache when possible. The store
// remains the source of truth; cache failures are logged and ignored.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeList(ctx, products)
	return products, nil
}

// Get returns a single product by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(productNotFoundMsg)
		}
		return nil, err
	}
	return product, nil
}

// Create validates input, applies defaults, persists and returns the entity.
func (s *CatalogService) Create(ctx context.Context, subject string, input CreateProductInput) (*domain.Product, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Category:      input.Category,
		Price:         *input.Price,
		Image:         input.Image,
		Description:   input.Description,
		Specs:         input.Specs,
		Rating:        4.5,
		Reviews:       0,
		Featured:      false,
		AffiliateLink: input.AffiliateLink,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.Specs == nil {
		product.Specs = []string{}
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Reviews != nil {
		product.Reviews = *input.Reviews
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventProductCreated, product.ID, subject, events.ProductCreatedPayload{
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Featured: product.Featured,
	})
	return product, nil
}

// Update applies a partial patch to an existing product. Omitted fields are
// left unchanged; updatedAt always refreshes.
func (s *CatalogService) Update(ctx context.Context, subject, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	product, err := s.products.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(productNotFoundMsg)
		}
		return nil, err
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventProductUpdated, id, subject, events.ProductUpdatedPayload{
		ChangedFields: changedFields(patch),
	})
	return product, nil
}

// Delete removes a product.
func (s *CatalogService) Delete(ctx context.Context, subject, id string) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound(productNotFoundMsg)
		}
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound(productNotFoundMsg)
		}
		return err
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.EventProductDeleted, id, subject, events.ProductDeletedPayload{
		Name: product.Name,
	})
	return nil
}

func (s *CatalogService) cachedList(ctx context.Context) ([]domain.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, productListCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("product cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		s.logger.Warn("product cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return products, true
}

func (s *CatalogService) storeList(ctx context.Context, products []domain.Product) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, productListCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("product cache write failed", zap.Error(err))
	}
}

func (s *CatalogService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productListCacheKey).Err(); err != nil {
		s.logger.Warn("product cache invalidation failed", zap.Error(err))
	}
}

func (s *CatalogService) publish(ctx context.Context, eventType events.EventType, entityID, subject string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func validateCreateInput(input CreateProductInput) error {
	details := map[string]any{}
	if input.Name == "" {
		details["name"] = "required"
	}
	if input.Category == "" {
		details["category"] = "required"
	}
	if input.Image == "" {
		details["image"] = "required"
	}
	if input.Description == "" {
		details["description"] = "required"
	}
	if input.AffiliateLink == "" {
		details["affiliateLink"] = "required"
	}
	if input.Price == nil {
		details["price"] = "required"
	} else if *input.Price < 0 {
		details["price"] = "must be non-negative"
	}
	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		details["rating"] = "must be between 0 and 5"
	}
	if input.Reviews != nil && *input.Reviews < 0 {
		details["reviews"] = "must be non-negative"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product payload", details)
	}
	return nil
}

func validatePatch(patch domain.ProductPatch) error {
	details := map[string]any{}
	if patch.Price != nil && *patch.Price < 0 {
		details["price"] = "must be non-negative"
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		details["rating"] = "must be between 0 and 5"
	}
	if patch.Reviews != nil && *patch.Reviews < 0 {
		details["reviews"] = "must be non-negative"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product payload", details)
	}
	return nil
}

func changedFields(patch domain.ProductPatch) []string {
	fields := []string{}
	if patch.Name != nil {
		fields = append(fields, "name")
	}
	if patch.Category != nil {
		fields = append(fields, "category")
	}
	if patch.Price != nil {
		fields = append(fields, "price")
	}
	if patch.Image != nil {
		fields = append(fields, "image")
	}
	if patch.Description != nil {
		fields = append(fields, "description")
	}
	if patch.Specs != nil {
		fields = append(fields, "specs")
	}
	if patch.Rating != nil {
		fields = append(fields, "rating")
	}
	if patch.Reviews != nil {
		fields = append(fields, "reviews")
	}
	if patch.Featured != nil {
		fields = append(fields, "featured")
	}
	if patch.AffiliateLink != nil {
		fields = append(fields, "affiliateLink")
	}
	return fields
}
