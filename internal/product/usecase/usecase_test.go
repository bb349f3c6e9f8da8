package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nmellal/gestock/internal/domain"
	"github.com/nmellal/gestock/internal/model"
	"github.com/nmellal/gestock/internal/product/dto"
	"github.com/nmellal/gestock/pkg/cache"
	"github.com/nmellal/gestock/pkg/logger"
)

type fakeListCache struct {
	store   map[string]string
	deleted []string
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{store: map[string]string{}}
}

func (c *fakeListCache) Get(_ context.Context, key string) (string, error) {
	val, ok := c.store[key]
	if !ok {
		return "", cache.ErrNotFound
	}
	return val, nil
}

func (c *fakeListCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.store[key] = value
	return nil
}

func (c *fakeListCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type fakeProductRepo struct {
	products      []model.Product
	categoryNames map[string]string
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	r.products = append(r.products, *p)
	return nil
}

func (r *fakeProductRepo) enrich(p model.Product) model.Product {
	p.CategoryName = r.categoryNames[p.CategoryID]
	return p
}

func (r *fakeProductRepo) FindByID(_ context.Context, id, commerceID string) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id && r.products[i].CommerceID == commerceID {
			cp := r.enrich(r.products[i])
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, commerceID string) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range r.products {
		if p.CommerceID == commerceID {
			out = append(out, r.enrich(p))
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) (int64, error) {
	for i := range r.products {
		if r.products[i].ID == p.ID && r.products[i].CommerceID == p.CommerceID {
			// Only the columns the real UPDATE touches.
			r.products[i].Name = p.Name
			r.products[i].Price = p.Price
			r.products[i].ImageURL = p.ImageURL
			r.products[i].UpdatedAt = p.UpdatedAt
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id, commerceID string) (int64, error) {
	for i := range r.products {
		if r.products[i].ID == id && r.products[i].CommerceID == commerceID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newProductUC(repo *fakeProductRepo) *productUseCase {
	return NewProductUseCase(repo, nil, logger.NewNop()).(*productUseCase)
}

func TestCreateProduct_Validation(t *testing.T) {
	uc := newProductUC(&fakeProductRepo{})

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1", CategoryID: "c1", Price: 0,
	})
	require.True(t, domain.IsValidation(err))

	_, err = uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1", CategoryID: "", Price: 100,
	})
	require.True(t, domain.IsValidation(err))
}

func TestCreateProduct_Defaults(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUC(repo)

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1",
		CategoryID: "c1",
		Name:       "Cola",
		Price:      500,
	})
	require.NoError(t, err)
	require.Equal(t, "", p.ImageURL)
	require.Equal(t, int64(0), p.Quantity)
	require.Equal(t, "piece", p.Unit)
}

func TestListProducts_EnrichedWithCategoryName(t *testing.T) {
	repo := &fakeProductRepo{categoryNames: map[string]string{"c1": "Drinks"}}
	uc := newProductUC(repo)

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1", CategoryID: "c1", Name: "Cola", Price: 500,
	})
	require.NoError(t, err)

	list, err := uc.ListProducts(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Drinks", list[0].CategoryName)
}

func TestUpdateProduct_OnlyNamePriceImage(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUC(repo)

	created, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1", CategoryID: "c1", Name: "Cola", Price: 500, Quantity: 10, ImageURL: "/uploads/a.png",
	})
	require.NoError(t, err)

	_, err = uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID:         created.ID,
		CommerceID: "t1",
		Name:       "Cola Zero",
		Price:      600,
		ImageURL:   "/uploads/b.png",
	})
	require.NoError(t, err)

	got, err := uc.GetProduct(context.Background(), created.ID, "t1")
	require.NoError(t, err)
	require.Equal(t, "Cola Zero", got.Name)
	require.Equal(t, int64(600), got.Price)
	require.Equal(t, "/uploads/b.png", got.ImageURL)
	// Quantity and category never move through update.
	require.Equal(t, int64(10), got.Quantity)
	require.Equal(t, "c1", got.CategoryID)
}

func TestGetProduct_CrossTenantIsAbsent(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newProductUC(repo)

	created, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1", CategoryID: "c1", Name: "Cola", Price: 500,
	})
	require.NoError(t, err)

	got, err := uc.GetProduct(context.Background(), created.ID, "t2")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID: created.ID, CommerceID: "t2", Name: "Hijacked", Price: 1,
	})
	require.True(t, domain.IsNotFound(err))

	err = uc.DeleteProduct(context.Background(), created.ID, "t2")
	require.True(t, domain.IsNotFound(err))

	// Still present and unchanged for its owner.
	got, err = uc.GetProduct(context.Background(), created.ID, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Cola", got.Name)
}

func TestDeleteProduct_AbsentIsNotFound(t *testing.T) {
	uc := newProductUC(&fakeProductRepo{})

	err := uc.DeleteProduct(context.Background(), "missing", "t1")
	require.True(t, domain.IsNotFound(err))
}

func TestListProducts_CachesPerTenant(t *testing.T) {
	repo := &fakeProductRepo{}
	lc := newFakeListCache()
	uc := NewProductUseCase(repo, lc, logger.NewNop()).(*productUseCase)

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1", CategoryID: "c1", Name: "Cola", Price: 500,
	})
	require.NoError(t, err)

	list, err := uc.ListProducts(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Contains(t, lc.store, "products:list:t1")

	// Second read is served from the cache even if the repo changed
	// underneath it.
	repo.products = nil
	list, err = uc.ListProducts(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestMutations_InvalidateListCacheBeforeReturning(t *testing.T) {
	repo := &fakeProductRepo{}
	lc := newFakeListCache()
	uc := NewProductUseCase(repo, lc, logger.NewNop()).(*productUseCase)

	created, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		CommerceID: "t1", CategoryID: "c1", Name: "Cola", Price: 500,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"products:list:t1"}, lc.deleted)

	// Warm the cache, then mutate: the stale entry must be gone by the time
	// the call returns, so the next list reflects the write.
	_, err = uc.ListProducts(context.Background(), "t1")
	require.NoError(t, err)
	_, err = uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID: created.ID, CommerceID: "t1", Name: "Cola Zero", Price: 600,
	})
	require.NoError(t, err)
	require.NotContains(t, lc.store, "products:list:t1")

	list, err := uc.ListProducts(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, "Cola Zero", list[0].Name)

	err = uc.DeleteProduct(context.Background(), created.ID, "t1")
	require.NoError(t, err)
	require.NotContains(t, lc.store, "products:list:t1")

	list, err = uc.ListProducts(context.Background(), "t1")
	require.NoError(t, err)
	require.Empty(t, list)
}
