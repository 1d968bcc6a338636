package dto

import "inventario/internal/models"

// ClientDTO is the wire shape of a client.
type ClientDTO struct {
	ID        *uint   `json:"id"`
	FirstName *string `json:"firstName" validate:"required,max=100"`
	LastName  *string `json:"lastName" validate:"required,max=100"`
	Email     *string `json:"email" validate:"required,max=255,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=15"`
}

// NewClientDTO projects a stored client onto its transfer object.
func NewClientDTO(c models.Client) ClientDTO {
	out := ClientDTO{
		ID:        ptr(c.ID),
		FirstName: ptr(c.FirstName),
		LastName:  ptr(c.LastName),
		Email:     ptr(c.Email),
	}
	if c.Phone != "" {
		out.Phone = ptr(c.Phone)
	}
	return out
}
