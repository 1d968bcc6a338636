package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inventario/internal/dto"
	"inventario/internal/models"
	"inventario/internal/services"
)

func newProductDTO() dto.ProductDTO {
	price := decimal.RequireFromString("19.99")
	return dto.ProductDTO{
		Name:        strPtr("Keyboard"),
		Description: strPtr("Mechanical keyboard"),
		Price:       &price,
		Stock:       intPtr(10),
		CategoryID:  uintPtr(1),
	}
}

func TestProductService_GetAllProducts(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)

	store.products.On("GetAll", mock.Anything).Return([]models.Product{
		{ID: 1, Name: "Product A", Price: decimal.NewFromInt(10), Stock: 100, CategoryID: 1},
		{ID: 2, Name: "Product B", Price: decimal.NewFromInt(20), Stock: 50, CategoryID: 1},
	}, nil).Once()

	products, err := service.GetAllProducts(context.Background())

	assert.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[1].Price.Equal(decimal.NewFromInt(20)))
	store.assertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)

	store.categories.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
	store.products.On("ExistsByIdentity", mock.Anything, "Keyboard", "Mechanical keyboard", uint(1), uint(0)).Return(false, nil).Once()
	store.products.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = 5
		}).Return(nil).Once()

	created, err := service.CreateProduct(context.Background(), newProductDTO())

	require.NoError(t, err)
	assert.Equal(t, uint(5), *created.ID)
	assert.Equal(t, 10, *created.Stock)
	store.assertExpectations(t)
}

func TestProductService_CreateProductBusinessRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.ProductDTO)
	}{
		{"missing price", func(p *dto.ProductDTO) { p.Price = nil }},
		{"missing stock", func(p *dto.ProductDTO) { p.Stock = nil }},
		{"zero price", func(p *dto.ProductDTO) { v := decimal.Zero; p.Price = &v }},
		{"negative price", func(p *dto.ProductDTO) { v := decimal.NewFromInt(-1); p.Price = &v }},
		{"three decimals", func(p *dto.ProductDTO) { v := decimal.RequireFromString("1.999"); p.Price = &v }},
		{"negative stock", func(p *dto.ProductDTO) { p.Stock = intPtr(-1) }},
		{"blank description", func(p *dto.ProductDTO) { p.Description = strPtr(" ") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			service := services.NewProductService(store)
			in := newProductDTO()
			tt.mutate(&in)

			_, err := service.CreateProduct(context.Background(), in)

			assert.ErrorIs(t, err, services.ErrValidation)
			store.assertExpectations(t)
		})
	}
}

func TestProductService_CreateProductUnknownCategory(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)

	store.categories.On("Exists", mock.Anything, uint(1)).Return(false, nil).Once()

	_, err := service.CreateProduct(context.Background(), newProductDTO())

	assert.ErrorIs(t, err, services.ErrValidation)
	assert.EqualError(t, err, "the category with ID 1 does not exist")
	store.assertExpectations(t)
}

func TestProductService_CreateProductDuplicate(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)

	store.categories.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
	store.products.On("ExistsByIdentity", mock.Anything, "Keyboard", "Mechanical keyboard", uint(1), uint(0)).Return(true, nil).Once()

	_, err := service.CreateProduct(context.Background(), newProductDTO())

	assert.ErrorIs(t, err, services.ErrConflict)
	store.assertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)
	in := newProductDTO()
	in.ID = uintPtr(5)
	in.Stock = intPtr(0)

	store.products.On("GetByID", mock.Anything, uint(5)).
		Return(&models.Product{ID: 5, Name: "Keyboard", Stock: 10, CategoryID: 1, Version: 1}, nil).Once()
	store.categories.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
	store.products.On("ExistsByIdentity", mock.Anything, "Keyboard", "Mechanical keyboard", uint(1), uint(5)).Return(false, nil).Once()
	store.products.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 5 && p.Stock == 0 && p.Price.Equal(decimal.RequireFromString("19.99"))
	})).Return(nil).Once()

	assert.NoError(t, service.UpdateProduct(context.Background(), 5, in))
	store.assertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)

	store.products.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
	store.sales.On("ExistsByProduct", mock.Anything, uint(1)).Return(true, nil).Once()
	err := service.DeleteProduct(context.Background(), 1)
	assert.ErrorIs(t, err, services.ErrConflict)

	store.products.On("Exists", mock.Anything, uint(2)).Return(true, nil).Once()
	store.sales.On("ExistsByProduct", mock.Anything, uint(2)).Return(false, nil).Once()
	store.products.On("Delete", mock.Anything, uint(2)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(context.Background(), 2))

	store.assertExpectations(t)
}
