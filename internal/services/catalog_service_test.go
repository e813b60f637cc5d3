package services_test

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyProductRepository wraps the in-memory repository with a failure
// switch so refresh behavior under a broken backend can be exercised.
type flakyProductRepository struct {
	*repositories.MockProductRepository
	failReads bool
}

func (r *flakyProductRepository) GetAll() ([]models.Product, error) {
	if r.failReads {
		return nil, fmt.Errorf("backend unavailable")
	}
	return r.MockProductRepository.GetAll()
}

func TestCatalogListPopulatesAndServesCache(t *testing.T) {
	repo := &flakyProductRepository{MockProductRepository: repositories.NewMockProductRepository()}
	cache := redisstore.NewMemoryStore()
	svc := services.NewCatalogService(repo, cache)
	ctx := context.Background()

	seedProduct(t, repo.MockProductRepository, "prod-1", 10)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	// The cache is now warm: reads survive a dead backend.
	repo.failReads = true
	products, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogRefreshReturnsStaleListOnFailure(t *testing.T) {
	repo := &flakyProductRepository{MockProductRepository: repositories.NewMockProductRepository()}
	cache := redisstore.NewMemoryStore()
	svc := services.NewCatalogService(repo, cache)
	ctx := context.Background()

	seedProduct(t, repo.MockProductRepository, "prod-1", 10)
	_, err := svc.List(ctx)
	require.NoError(t, err)

	repo.failReads = true
	stale, err := svc.Refresh(ctx)
	assert.Error(t, err)
	require.Len(t, stale, 1, "stale data accompanies the error")
	assert.Equal(t, "prod-1", stale[0].ID)
}

func TestCatalogRefreshWithoutCacheFailsOutright(t *testing.T) {
	repo := &flakyProductRepository{MockProductRepository: repositories.NewMockProductRepository(), failReads: true}
	svc := services.NewCatalogService(repo, redisstore.NewMemoryStore())

	products, err := svc.Refresh(context.Background())
	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestCatalogMutationsInvalidateCache(t *testing.T) {
	repo := &flakyProductRepository{MockProductRepository: repositories.NewMockProductRepository()}
	cache := redisstore.NewMemoryStore()
	svc := services.NewCatalogService(repo, cache)
	ctx := context.Background()

	seedProduct(t, repo.MockProductRepository, "prod-1", 10)
	_, err := svc.List(ctx)
	require.NoError(t, err)

	created := models.Product{ID: "prod-2", Name: "New", Category: "test", Price: 20, InStock: true}
	require.NoError(t, svc.Create(ctx, &created))

	// The next read refetches wholesale and sees the new product.
	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	require.NoError(t, svc.Delete(ctx, "prod-2"))
	products, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogWorksWithoutCache(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	svc := services.NewCatalogService(repo, nil)
	ctx := context.Background()

	seedProduct(t, repo, "prod-1", 10)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	products, err = svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
