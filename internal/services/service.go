package services

import (
	"context"
	"errors"
	"fmt"

	"inventario/internal/repositories"
)

// translate maps repository errors onto the service error kinds. Errors that are
// already classified pass through unchanged.
func translate(err error, resource string, id uint, duplicateMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return notFoundError(resource, id)
	case errors.Is(err, repositories.ErrDuplicate):
		return conflictError("%s", duplicateMsg)
	default:
		return err
	}
}

// finishUpdate classifies the outcome of an update transaction. A stale write is
// reconciled by checking, outside the failed transaction, whether the row survived:
// a vanished row is reported as not found, a surviving one as ErrConcurrentUpdate.
func finishUpdate(ctx context.Context, err error, resource string, id uint, duplicateMsg string,
	exists func(context.Context, uint) (bool, error)) error {
	if !errors.Is(err, repositories.ErrStaleVersion) {
		return translate(err, resource, id, duplicateMsg)
	}
	found, existsErr := exists(ctx, id)
	if existsErr != nil {
		return fmt.Errorf("failed to re-check %s %d after stale write: %w", resource, id, existsErr)
	}
	if !found {
		return notFoundError(resource, id)
	}
	return fmt.Errorf("%s with ID %d: %w", resource, id, ErrConcurrentUpdate)
}
