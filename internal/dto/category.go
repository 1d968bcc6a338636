package dto

import "inventario/internal/models"

// CategoryDTO is the wire shape of a category.
type CategoryDTO struct {
	ID          *uint   `json:"id"`
	Name        *string `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"required,max=500"`
}

// NewCategoryDTO projects a stored category onto its transfer object.
func NewCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          ptr(c.ID),
		Name:        ptr(c.Name),
		Description: ptr(c.Description),
	}
}
