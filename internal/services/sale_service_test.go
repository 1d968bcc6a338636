package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inventario/internal/dto"
	"inventario/internal/models"
	"inventario/internal/services"
)

var saleClock = time.Date(2024, time.May, 10, 15, 0, 0, 0, time.UTC)

func newSaleService(store *mockStore) *services.SaleService {
	return services.NewSaleService(store,
		services.WithLocation(time.UTC),
		services.WithClock(func() time.Time { return saleClock }),
	)
}

func newSaleDTO(date time.Time) dto.SaleDTO {
	total := decimal.RequireFromString("39.98")
	return dto.SaleDTO{
		ProductID: uintPtr(1),
		Quantity:  intPtr(2),
		SaleDate:  &date,
		Total:     &total,
		ClientID:  uintPtr(3),
	}
}

func sameInstant(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func TestSaleService_CreateSale(t *testing.T) {
	store := newMockStore()
	service := newSaleService(store)

	// Same calendar day in UTC, sent with an offset and sub-microsecond precision.
	sent := time.Date(2024, time.May, 10, 12, 30, 0, 123456789, time.FixedZone("CEST", 2*60*60))
	stored := time.Date(2024, time.May, 10, 10, 30, 0, 123456000, time.UTC)

	store.products.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
	store.clients.On("Exists", mock.Anything, uint(3)).Return(true, nil).Once()
	store.sales.On("ExistsByIdentity", mock.Anything, uint(1), 2, sameInstant(stored), uint(0)).Return(false, nil).Once()
	store.sales.On("Create", mock.Anything, mock.AnythingOfType("*models.Sale")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Sale).ID = 11
		}).Return(nil).Once()

	created, err := service.CreateSale(context.Background(), newSaleDTO(sent))

	require.NoError(t, err)
	assert.Equal(t, uint(11), *created.ID)
	assert.True(t, created.SaleDate.Equal(stored))
	assert.Equal(t, time.UTC, created.SaleDate.Location())
	assert.True(t, created.Total.Equal(decimal.RequireFromString("39.98")))
	store.assertExpectations(t)
}

func TestSaleService_CreateSaleRejectsOtherDays(t *testing.T) {
	store := newMockStore()
	service := newSaleService(store)

	_, err := service.CreateSale(context.Background(), newSaleDTO(saleClock.AddDate(0, 0, -1)))
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.EqualError(t, err, "the sale date must be the current date")

	_, err = service.CreateSale(context.Background(), newSaleDTO(saleClock.AddDate(0, 0, 1)))
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Zero(t, store.txCount)
}

func TestSaleService_TodayFollowsLocation(t *testing.T) {
	store := newMockStore()
	// 23:30 UTC on May 10 is already May 11 in UTC+2.
	service := services.NewSaleService(store,
		services.WithLocation(time.FixedZone("UTC+2", 2*60*60)),
		services.WithClock(func() time.Time { return time.Date(2024, time.May, 10, 23, 30, 0, 0, time.UTC) }),
	)

	_, err := service.CreateSale(context.Background(), newSaleDTO(time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)))

	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestSaleService_CreateSaleBusinessRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.SaleDTO)
	}{
		{"missing product", func(s *dto.SaleDTO) { s.ProductID = nil }},
		{"missing date", func(s *dto.SaleDTO) { s.SaleDate = nil }},
		{"zero quantity", func(s *dto.SaleDTO) { s.Quantity = intPtr(0) }},
		{"negative total", func(s *dto.SaleDTO) { v := decimal.NewFromInt(-5); s.Total = &v }},
		{"three decimals", func(s *dto.SaleDTO) { v := decimal.RequireFromString("0.001"); s.Total = &v }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			service := newSaleService(store)
			in := newSaleDTO(saleClock)
			tt.mutate(&in)

			_, err := service.CreateSale(context.Background(), in)

			assert.ErrorIs(t, err, services.ErrValidation)
			store.assertExpectations(t)
		})
	}
}

func TestSaleService_CreateSaleReferences(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		store := newMockStore()
		service := newSaleService(store)
		store.products.On("Exists", mock.Anything, uint(1)).Return(false, nil).Once()

		_, err := service.CreateSale(context.Background(), newSaleDTO(saleClock))
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.EqualError(t, err, "the product with ID 1 does not exist")
		store.assertExpectations(t)
	})

	t.Run("unknown client", func(t *testing.T) {
		store := newMockStore()
		service := newSaleService(store)
		store.products.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
		store.clients.On("Exists", mock.Anything, uint(3)).Return(false, nil).Once()

		_, err := service.CreateSale(context.Background(), newSaleDTO(saleClock))
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.EqualError(t, err, "the client with ID 3 does not exist")
		store.assertExpectations(t)
	})

	t.Run("duplicate", func(t *testing.T) {
		store := newMockStore()
		service := newSaleService(store)
		store.products.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
		store.clients.On("Exists", mock.Anything, uint(3)).Return(true, nil).Once()
		store.sales.On("ExistsByIdentity", mock.Anything, uint(1), 2, sameInstant(saleClock), uint(0)).Return(true, nil).Once()

		_, err := service.CreateSale(context.Background(), newSaleDTO(saleClock))
		assert.ErrorIs(t, err, services.ErrConflict)
		store.assertExpectations(t)
	})
}

func TestSaleService_UpdateSaleAcceptsPastDates(t *testing.T) {
	store := newMockStore()
	service := newSaleService(store)
	past := saleClock.AddDate(0, -1, 0)
	in := newSaleDTO(past)
	in.ID = uintPtr(11)

	store.sales.On("GetByID", mock.Anything, uint(11)).
		Return(&models.Sale{ID: 11, ProductID: 1, Quantity: 1, SaleDate: saleClock, ClientID: 3, Version: 4}, nil).Once()
	store.products.On("Exists", mock.Anything, uint(1)).Return(true, nil).Once()
	store.clients.On("Exists", mock.Anything, uint(3)).Return(true, nil).Once()
	store.sales.On("ExistsByIdentity", mock.Anything, uint(1), 2, sameInstant(past), uint(11)).Return(false, nil).Once()
	store.sales.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Sale) bool {
		return s.ID == 11 && s.Quantity == 2 && s.SaleDate.Equal(past) && s.Version == 4
	})).Return(nil).Once()

	assert.NoError(t, service.UpdateSale(context.Background(), 11, in))
	store.assertExpectations(t)
}

func TestSaleService_DeleteSale(t *testing.T) {
	store := newMockStore()
	service := newSaleService(store)

	store.sales.On("Exists", mock.Anything, uint(4)).Return(false, nil).Once()
	assert.ErrorIs(t, service.DeleteSale(context.Background(), 4), services.ErrNotFound)

	store.sales.On("Exists", mock.Anything, uint(5)).Return(true, nil).Once()
	store.sales.On("Delete", mock.Anything, uint(5)).Return(nil).Once()
	assert.NoError(t, service.DeleteSale(context.Background(), 5))

	store.assertExpectations(t)
}
