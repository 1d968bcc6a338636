package services

import (
	"context"

	"inventario/internal/dto"
	"inventario/internal/models"
	"inventario/internal/repositories"
)

const duplicateClientMsg = "a client with that email already exists"

// ClientService handles business logic related to clients.
type ClientService struct {
	store repositories.Store
}

func NewClientService(store repositories.Store) *ClientService {
	return &ClientService{store: store}
}

func (s *ClientService) GetAllClients(ctx context.Context) ([]dto.ClientDTO, error) {
	clients, err := s.store.Clients().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.NewClientDTO(c))
	}
	return out, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, id uint) (*dto.ClientDTO, error) {
	client, err := s.store.Clients().GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "client", id, "")
	}
	out := dto.NewClientDTO(*client)
	return &out, nil
}

func (s *ClientService) CreateClient(ctx context.Context, in dto.ClientDTO) (*dto.ClientDTO, error) {
	if err := validateClient(in); err != nil {
		return nil, err
	}

	client := models.Client{
		FirstName: *in.FirstName,
		LastName:  *in.LastName,
		Email:     *in.Email,
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		dup, err := tx.Clients().ExistsByEmail(ctx, client.Email, 0)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateClientMsg)
		}
		return tx.Clients().Create(ctx, &client)
	})
	if err != nil {
		return nil, translate(err, "client", 0, duplicateClientMsg)
	}
	out := dto.NewClientDTO(client)
	return &out, nil
}

// UpdateClient replaces every field of an existing client. A missing phone clears it.
func (s *ClientService) UpdateClient(ctx context.Context, id uint, in dto.ClientDTO) error {
	if err := checkID(id, in.ID); err != nil {
		return err
	}
	if err := validateClient(in); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		client, err := tx.Clients().GetByID(ctx, id)
		if err != nil {
			return err
		}
		dup, err := tx.Clients().ExistsByEmail(ctx, *in.Email, id)
		if err != nil {
			return err
		}
		if dup {
			return conflictError(duplicateClientMsg)
		}
		client.FirstName = *in.FirstName
		client.LastName = *in.LastName
		client.Email = *in.Email
		client.Phone = ""
		if in.Phone != nil {
			client.Phone = *in.Phone
		}
		return tx.Clients().Update(ctx, client)
	})
	return finishUpdate(ctx, err, "client", id, duplicateClientMsg, s.store.Clients().Exists)
}

// DeleteClient removes a client that no sale references.
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.Clients().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return notFoundError("client", id)
		}
		inUse, err := tx.Sales().ExistsByClient(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return conflictError("the client cannot be deleted because it has associated sales")
		}
		return tx.Clients().Delete(ctx, id)
	})
	return translate(err, "client", id, "")
}

func validateClient(in dto.ClientDTO) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if isBlank(in.FirstName) || isBlank(in.LastName) || isBlank(in.Email) {
		return validationError("first name, last name and email cannot be null or empty")
	}
	return nil
}
