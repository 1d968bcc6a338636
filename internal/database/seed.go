package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"inventario/internal/models"
	"inventario/internal/repositories"
	"inventario/pkg/logger"
)

// Seed fills an empty database with a demo category and a few products.
// It does nothing when at least one category already exists.
func Seed(ctx context.Context, store repositories.Store, log *logger.Logger) error {
	existing, err := store.Categories().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect categories before seeding: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("categories", len(existing)).Msg("database already populated, skipping seed")
		return nil
	}

	return store.Transaction(ctx, func(tx repositories.Store) error {
		category := models.Category{Name: "Computing", Description: "Computers and peripherals"}
		if err := tx.Categories().Create(ctx, &category); err != nil {
			return fmt.Errorf("failed to seed category: %w", err)
		}

		products := []models.Product{
			{Name: "Laptop", Description: "High performance laptop", Price: decimal.RequireFromString("1200.00"), Stock: 10},
			{Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.RequireFromString("75.00"), Stock: 25},
			{Name: "Mouse", Description: "Ergonomic wireless mouse", Price: decimal.RequireFromString("25.00"), Stock: 50},
		}
		for i := range products {
			products[i].CategoryID = category.ID
			if err := tx.Products().Create(ctx, &products[i]); err != nil {
				return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
			}
			log.Info().Uint("id", products[i].ID).Str("name", products[i].Name).Msg("seeded product")
		}
		return nil
	})
}
