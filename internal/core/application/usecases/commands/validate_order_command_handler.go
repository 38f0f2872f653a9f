package commands

import (
	"context"
	"errors"

	"orderflow/internal/pkg/errs"
)

// ValidateOrderCommandHandler is the background validation unit of work.
// It executes outside the scheduling request's lifetime in its own
// transactional view: it re-fetches the order, re-checks product reference,
// quantity, and price positivity, and writes VALIDATED or REJECTED.
//
// An order deleted between scheduling and execution is a benign race: the
// run ends silently without creating anything. Any storage failure rolls
// back the pending write and surfaces only to the task runner's log;
// the scheduling caller already received its acknowledgement and has no
// channel to observe it.
type ValidateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewValidateOrderCommandHandler creates the background validation handler.
func NewValidateOrderCommandHandler(uowFactory OrderUoWFactory) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one validation pass over the order.
func (h ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	aggregate.CompleteValidation()

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
