package services

import (
	"context"

	"inventario/internal/dto"
	"inventario/internal/models"
	"inventario/internal/repositories"
)

const duplicateProductMsg = "a product with that name and description already exists in the category"

// ProductService handles business logic related to products.
type ProductService struct {
	store repositories.Store
}

// NewProductService creates a new ProductService.
func NewProductService(store repositories.Store) *ProductService {
	return &ProductService{
		store: store,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := s.store.Products().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductDTO(p))
	}
	return out, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	product, err := s.store.Products().GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "product", id, "")
	}
	out := dto.NewProductDTO(*product)
	return &out, nil
}

// CreateProduct validates and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, in dto.ProductDTO) (*dto.ProductDTO, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        *in.Name,
		Description: *in.Description,
		Price:       *in.Price,
		Stock:       *in.Stock,
		CategoryID:  *in.CategoryID,
	}
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if err := checkCategoryExists(ctx, tx, product.CategoryID); err != nil {
			return err
		}
		dup, err := tx.Products().ExistsByIdentity(ctx, product.Name, product.Description, product.CategoryID, 0)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateProductMsg)
		}
		return tx.Products().Create(ctx, &product)
	})
	if err != nil {
		return nil, translate(err, "product", 0, duplicateProductMsg)
	}
	out := dto.NewProductDTO(product)
	return &out, nil
}

// UpdateProduct replaces every field of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in dto.ProductDTO) error {
	if err := checkID(id, in.ID); err != nil {
		return err
	}
	if err := validateProduct(in); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		product, err := tx.Products().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkCategoryExists(ctx, tx, *in.CategoryID); err != nil {
			return err
		}
		dup, err := tx.Products().ExistsByIdentity(ctx, *in.Name, *in.Description, *in.CategoryID, id)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateProductMsg)
		}
		product.Name = *in.Name
		product.Description = *in.Description
		product.Price = *in.Price
		product.Stock = *in.Stock
		product.CategoryID = *in.CategoryID
		return tx.Products().Update(ctx, product)
	})
	return finishUpdate(ctx, err, "product", id, duplicateProductMsg, s.store.Products().Exists)
}

// DeleteProduct removes a product that no sale references.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.Products().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundError("product", id)
		}
		inUse, err := tx.Sales().ExistsByProduct(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return conflictError("the product cannot be deleted because it has associated sales")
		}
		return tx.Products().Delete(ctx, id)
	})
	return translate(err, "product", id, "")
}

func validateProduct(in dto.ProductDTO) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if isBlank(in.Name) || isBlank(in.Description) {
		return validationError("name and description cannot be null or empty")
	}
	if !in.Price.IsPositive() {
		return validationError("price must be greater than zero")
	}
	if !hasAtMostTwoDecimals(*in.Price) {
		return validationError("price cannot have more than two decimal places")
	}
	if *in.Stock < 0 {
		return validationError("stock cannot be negative")
	}
	return nil
}

func checkCategoryExists(ctx context.Context, tx repositories.Store, id uint) error {
	exists, err := tx.Categories().Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return validationError("the category with ID %d does not exist", id)
	}
	return nil
}
