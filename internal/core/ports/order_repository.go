package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities.
type OrderRepository interface {
	// Add persists a new order aggregate and returns the stored aggregate
	// carrying the storage-assigned identifier.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no record exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// List retrieves a page of orders ordered by id.
	List(ctx context.Context, limit, offset int) ([]*order.Order, error)
}
