package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// ApproveOrderCommandHandler handles the VALIDATED -> APPROVED transition.
// Loads the order, consults the workflow through the aggregate, persists
// the new status, and returns the updated order.
//
// Example:
//
//	handler := NewApproveOrderCommandHandler(uowFactory)
//	cmd, _ := NewApproveOrderCommand(orderID)
//
//	approved, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order id
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order was not in VALIDATED status
//	}
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for order approval operations.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command within its own transactional view.
// Fails with ObjectNotFound for unknown ids and InvalidTransition when the
// workflow denies the move; the stored status is untouched in both cases.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Approve(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
