package services

import (
	"context"
	"time"

	"inventario/internal/dto"
	"inventario/internal/models"
	"inventario/internal/repositories"
)

const duplicateSaleMsg = "a sale with the same product, quantity and date already exists"

// SaleService handles business logic related to sales.
type SaleService struct {
	store repositories.Store
	loc   *time.Location
	now   func() time.Time
}

// SaleOption configures a SaleService.
type SaleOption func(*SaleService)

// WithLocation sets the time zone in which "today" is evaluated for new sales.
func WithLocation(loc *time.Location) SaleOption {
	return func(s *SaleService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces the wall clock used for the sale date check.
func WithClock(now func() time.Time) SaleOption {
	return func(s *SaleService) {
		s.now = now
	}
}

// NewSaleService creates a new SaleService. By default "today" is the local date.
func NewSaleService(store repositories.Store, opts ...SaleOption) *SaleService {
	s := &SaleService{
		store: store,
		loc:   time.Local,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAllSales retrieves all sales.
func (s *SaleService) GetAllSales(ctx context.Context) ([]dto.SaleDTO, error) {
	sales, err := s.store.Sales().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleDTO, 0, len(sales))
	for _, sale := range sales {
		out = append(out, dto.NewSaleDTO(sale))
	}
	return out, nil
}

// GetSaleByID retrieves a single sale by its ID.
func (s *SaleService) GetSaleByID(ctx context.Context, id uint) (*dto.SaleDTO, error) {
	sale, err := s.store.Sales().GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "sale", id, "")
	}
	out := dto.NewSaleDTO(*sale)
	return &out, nil
}

// CreateSale records a sale dated today for an existing product and client.
func (s *SaleService) CreateSale(ctx context.Context, in dto.SaleDTO) (*dto.SaleDTO, error) {
	if err := validateSale(in); err != nil {
		return nil, err
	}
	if !s.isToday(*in.SaleDate) {
		return nil, validationError("the sale date must be the current date")
	}

	sale := models.Sale{
		ProductID: *in.ProductID,
		Quantity:  *in.Quantity,
		SaleDate:  normalizeSaleDate(*in.SaleDate),
		Total:     *in.Total,
		ClientID:  *in.ClientID,
	}
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if err := checkSaleReferences(ctx, tx, sale.ProductID, sale.ClientID); err != nil {
			return err
		}
		dup, err := tx.Sales().ExistsByIdentity(ctx, sale.ProductID, sale.Quantity, sale.SaleDate, 0)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateSaleMsg)
		}
		return tx.Sales().Create(ctx, &sale)
	})
	if err != nil {
		return nil, translate(err, "sale", 0, duplicateSaleMsg)
	}
	out := dto.NewSaleDTO(sale)
	return &out, nil
}

// UpdateSale replaces every field of an existing sale. Past dates are accepted.
func (s *SaleService) UpdateSale(ctx context.Context, id uint, in dto.SaleDTO) error {
	if err := checkID(id, in.ID); err != nil {
		return err
	}
	if err := validateSale(in); err != nil {
		return err
	}

	saleDate := normalizeSaleDate(*in.SaleDate)
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		sale, err := tx.Sales().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkSaleReferences(ctx, tx, *in.ProductID, *in.ClientID); err != nil {
			return err
		}
		dup, err := tx.Sales().ExistsByIdentity(ctx, *in.ProductID, *in.Quantity, saleDate, id)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateSaleMsg)
		}
		sale.ProductID = *in.ProductID
		sale.Quantity = *in.Quantity
		sale.SaleDate = saleDate
		sale.Total = *in.Total
		sale.ClientID = *in.ClientID
		return tx.Sales().Update(ctx, sale)
	})
	return finishUpdate(ctx, err, "sale", id, duplicateSaleMsg, s.store.Sales().Exists)
}

// DeleteSale removes a sale.
func (s *SaleService) DeleteSale(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.Sales().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundError("sale", id)
		}
		return tx.Sales().Delete(ctx, id)
	})
	return translate(err, "sale", id, "")
}

func (s *SaleService) isToday(t time.Time) bool {
	y1, m1, d1 := t.In(s.loc).Date()
	y2, m2, d2 := s.now().In(s.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// normalizeSaleDate stores dates in UTC at the precision both drivers keep, so that
// equality lookups on the identity index match what was written.
func normalizeSaleDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func validateSale(in dto.SaleDTO) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if *in.Quantity < 1 {
		return validationError("quantity must be at least 1")
	}
	if in.Total.IsNegative() {
		return validationError("total cannot be negative")
	}
	if !hasAtMostTwoDecimals(*in.Total) {
		return validationError("total cannot have more than two decimal places")
	}
	return nil
}

func checkSaleReferences(ctx context.Context, tx repositories.Store, productID, clientID uint) error {
	exists, err := tx.Products().Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return validationError("the product with ID %d does not exist", productID)
	}
	exists, err = tx.Clients().Exists(ctx, clientID)
	if err != nil {
		return err
	}
	if !exists {
		return validationError("the client with ID %d does not exist", clientID)
	}
	return nil
}
