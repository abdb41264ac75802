package service

import (
	"context"
	"testing"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo())

	desc := "whole milk, 1L"
	product, err := svc.CreateProduct(context.Background(), model.CreateProductRequest{
		Name:        "Milk",
		Price:       650,
		Stock:       10,
		Description: &desc,
	})

	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, int64(650), product.Price)
	assert.Equal(t, 10, product.Stock)
}

func TestCatalogService_CreateProduct_DefaultsStockToZero(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo())

	product, err := svc.CreateProduct(context.Background(), model.CreateProductRequest{
		Name:  "Bread",
		Price: 300,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestCatalogService_CreateProduct_Rejections(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo())

	cases := []struct {
		name string
		req  model.CreateProductRequest
	}{
		{"empty name", model.CreateProductRequest{Name: "", Price: 100}},
		{"blank name", model.CreateProductRequest{Name: "  ", Price: 100}},
		{"zero price", model.CreateProductRequest{Name: "Milk", Price: 0}},
		{"negative price", model.CreateProductRequest{Name: "Milk", Price: -5}},
		{"negative stock", model.CreateProductRequest{Name: "Milk", Price: 100, Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCatalogService_UpdateProduct_Partial(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo)

	created, err := svc.CreateProduct(context.Background(), model.CreateProductRequest{Name: "Milk", Price: 650, Stock: 10})
	require.NoError(t, err)

	newPrice := int64(700)
	updated, err := svc.UpdateProduct(context.Background(), created.ID, model.UpdateProductRequest{Price: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, int64(700), updated.Price)
	assert.Equal(t, "Milk", updated.Name, "unspecified fields keep their values")
	assert.Equal(t, 10, updated.Stock)
}

// vanishingProductRepo reports every write as targeting a missing row,
// simulating a product deleted between the service's read and write.
type vanishingProductRepo struct {
	*fakeProductRepo
}

func (r *vanishingProductRepo) Update(_ context.Context, _ *model.Product) error {
	return repository.ErrProductNotFound
}

func TestCatalogService_UpdateProduct_DeletedConcurrently(t *testing.T) {
	repo := &vanishingProductRepo{fakeProductRepo: newFakeProductRepo()}
	svc := NewCatalogService(repo)

	created := &model.Product{Name: "Milk", Price: 650, Stock: 10}
	require.NoError(t, repo.fakeProductRepo.Create(context.Background(), created))

	newPrice := int64(700)
	_, err := svc.UpdateProduct(context.Background(), created.ID, model.UpdateProductRequest{Price: &newPrice})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo())

	name := "Ghost"
	_, err := svc.UpdateProduct(context.Background(), 99, model.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_Idempotent(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo)

	created, err := svc.CreateProduct(context.Background(), model.CreateProductRequest{Name: "Milk", Price: 650})
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
	// Second delete of the same id still succeeds.
	assert.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
}

func TestCatalogService_ListProducts(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo)

	_, err := svc.CreateProduct(context.Background(), model.CreateProductRequest{Name: "Milk", Price: 650})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), model.CreateProductRequest{Name: "Bread", Price: 300})
	require.NoError(t, err)

	products, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Milk", products[0].Name)
	assert.Equal(t, "Bread", products[1].Name)
}
