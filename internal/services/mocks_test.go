package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"inventario/internal/models"
	"inventario/internal/repositories"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByIdentity(ctx context.Context, name, description string, excludeID uint) (bool, error) {
	args := m.Called(ctx, name, description, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) ExistsByIdentity(ctx context.Context, name, description string, categoryID, excludeID uint) (bool, error) {
	args := m.Called(ctx, name, description, categoryID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) ExistsByCategory(ctx context.Context, categoryID uint) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSaleRepository is a mock implementation of repositories.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) GetAll(ctx context.Context) ([]models.Sale, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *MockSaleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSaleRepository) ExistsByIdentity(ctx context.Context, productID uint, quantity int, saleDate time.Time, excludeID uint) (bool, error) {
	args := m.Called(ctx, productID, quantity, saleDate, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSaleRepository) ExistsByProduct(ctx context.Context, productID uint) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSaleRepository) ExistsByClient(ctx context.Context, clientID uint) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Update(ctx context.Context, sale *models.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of repositories.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockStore hands out the mocks above and runs transactions inline.
type mockStore struct {
	categories *MockCategoryRepository
	products   *MockProductRepository
	sales      *MockSaleRepository
	clients    *MockClientRepository
	txCount    int
}

func newMockStore() *mockStore {
	return &mockStore{
		categories: new(MockCategoryRepository),
		products:   new(MockProductRepository),
		sales:      new(MockSaleRepository),
		clients:    new(MockClientRepository),
	}
}

func (s *mockStore) Categories() repositories.CategoryRepository { return s.categories }
func (s *mockStore) Products() repositories.ProductRepository   { return s.products }
func (s *mockStore) Sales() repositories.SaleRepository         { return s.sales }
func (s *mockStore) Clients() repositories.ClientRepository     { return s.clients }

func (s *mockStore) Transaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	s.txCount++
	return fn(s)
}

func (s *mockStore) assertExpectations(t mock.TestingT) {
	s.categories.AssertExpectations(t)
	s.products.AssertExpectations(t)
	s.sales.AssertExpectations(t)
	s.clients.AssertExpectations(t)
}
