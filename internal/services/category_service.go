package services

import (
	"context"

	"inventario/internal/dto"
	"inventario/internal/models"
	"inventario/internal/repositories"
)

const duplicateCategoryMsg = "a category with that name and description already exists"

// CategoryService handles business logic related to categories.
type CategoryService struct {
	store repositories.Store
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store repositories.Store) *CategoryService {
	return &CategoryService{
		store: store,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.store.Categories().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NewCategoryDTO(c))
	}
	return out, nil
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	category, err := s.store.Categories().GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "category", id, "")
	}
	out := dto.NewCategoryDTO(*category)
	return &out, nil
}

// CreateCategory validates and stores a new category. The ID in the input is ignored.
func (s *CategoryService) CreateCategory(ctx context.Context, in dto.CategoryDTO) (*dto.CategoryDTO, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}

	category := models.Category{Name: *in.Name, Description: *in.Description}
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		dup, err := tx.Categories().ExistsByIdentity(ctx, category.Name, category.Description, 0)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateCategoryMsg)
		}
		return tx.Categories().Create(ctx, &category)
	})
	if err != nil {
		return nil, translate(err, "category", 0, duplicateCategoryMsg)
	}
	out := dto.NewCategoryDTO(category)
	return &out, nil
}

// UpdateCategory replaces every field of an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in dto.CategoryDTO) error {
	if err := checkID(id, in.ID); err != nil {
		return err
	}
	if err := validateCategory(in); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		category, err := tx.Categories().GetByID(ctx, id)
		if err != nil {
			return err
		}
		dup, err := tx.Categories().ExistsByIdentity(ctx, *in.Name, *in.Description, id)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateCategoryMsg)
		}
		category.Name = *in.Name
		category.Description = *in.Description
		return tx.Categories().Update(ctx, category)
	})
	return finishUpdate(ctx, err, "category", id, duplicateCategoryMsg, s.store.Categories().Exists)
}

// DeleteCategory removes a category that no product references.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.Categories().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundError("category", id)
		}
		inUse, err := tx.Products().ExistsByCategory(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return conflictError("the category cannot be deleted because it has associated products")
		}
		return tx.Categories().Delete(ctx, id)
	})
	return translate(err, "category", id, "")
}

func validateCategory(in dto.CategoryDTO) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if isBlank(in.Name) || isBlank(in.Description) {
		return validationError("name and description cannot be null or empty")
	}
	return nil
}
