package services

import (
	"context"
	"errors"
	"log"

	"storefront/internal/metrics"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/redisstore"
)

// CatalogService serves the product list through a cache and owns the
// admin CRUD path. Reads come from the cache when it is warm; any admin
// mutation invalidates it so the next read refetches wholesale. There
// is no incremental merge and no server-side pagination: the storefront
// filters and pages over the full list client-side.
type CatalogService struct {
	repo  repositories.ProductRepository
	cache redisstore.CatalogCache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository, cache redisstore.CatalogCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

// List returns all products, served from cache when possible.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		products, err := s.cache.GetProducts(ctx)
		if err == nil {
			metrics.CatalogCacheHitsTotal.Inc()
			return products, nil
		}
		if !errors.Is(err, redisstore.ErrCacheMiss) {
			// A broken cache degrades to database reads.
			log.Printf("Catalog cache read failed: %v", err)
		}
		metrics.CatalogCacheMissesTotal.Inc()
	}

	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			log.Printf("Catalog cache write failed: %v", err)
		}
	}
	return products, nil
}

// Refresh refetches the list and replaces the cache wholesale. When the
// refetch fails the previously cached list is returned alongside the
// error so callers can keep rendering stale data.
func (s *CatalogService) Refresh(ctx context.Context) ([]models.Product, error) {
	fresh, err := s.repo.GetAll()
	if err != nil {
		if s.cache != nil {
			if stale, cacheErr := s.cache.GetProducts(ctx); cacheErr == nil {
				return stale, err
			}
		}
		return nil, err
	}
	if s.cache != nil {
		if cacheErr := s.cache.SetProducts(ctx, fresh); cacheErr != nil {
			log.Printf("Catalog cache write failed: %v", cacheErr)
		}
	}
	return fresh, nil
}

// GetByID returns a single product straight from the repository.
func (s *CatalogService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create adds a product and invalidates the cached list.
func (s *CatalogService) Create(ctx context.Context, product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update edits a product and invalidates the cached list.
func (s *CatalogService) Update(ctx context.Context, product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a product and invalidates the cached list.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("Catalog cache invalidation failed: %v", err)
	}
}
