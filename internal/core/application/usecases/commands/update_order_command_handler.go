package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a partial field update to an order.
// Loads the order, applies the set fields, persists, and returns the
// updated aggregate. Fails with ObjectNotFound for unknown ids.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command within its own transactional view.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.ProductID() != nil {
		aggregate.ChangeProductID(*cmd.ProductID())
	}
	if cmd.Quantity() != nil {
		if err = aggregate.ChangeQuantity(*cmd.Quantity()); err != nil {
			return nil, err
		}
	}
	if cmd.Price() != nil {
		if err = aggregate.ChangePrice(*cmd.Price()); err != nil {
			return nil, err
		}
	}
	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
