package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// ValidationTaskName identifies scheduled background validation tasks in logs.
const ValidationTaskName = "order_validation"

// StartOrderValidationCommandHandler checks that validation may start and
// schedules the background validation task. The call itself is synchronous
// and fast: it confirms the order exists and is in CREATED status, enqueues
// the task, and returns without waiting for the validation logic. The
// order's status is unchanged when the call returns; the change happens
// asynchronously with no ordering guarantee relative to later operations on
// the same order.
//
// Example:
//
//	handler := NewStartOrderValidationCommandHandler(uowFactory, scheduler, validateHandler)
//	cmd, _ := NewStartOrderValidationCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // ObjectNotFound or InvalidTransition
//	    return err
//	}
//	// validation started; outcome observable only through the order's status
type StartOrderValidationCommandHandler struct {
	uowFactory      OrderUoWFactory
	scheduler       ports.TaskScheduler
	validateHandler ValidateOrderCommandHandler
}

// NewStartOrderValidationCommandHandler creates a handler that schedules
// background validation through the given task scheduler.
func NewStartOrderValidationCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler ports.TaskScheduler,
	validateHandler ValidateOrderCommandHandler,
) StartOrderValidationCommandHandler {
	return StartOrderValidationCommandHandler{
		uowFactory:      uowFactory,
		scheduler:       scheduler,
		validateHandler: validateHandler,
	}
}

// Handle confirms the validation precondition and schedules the task.
// Fails with ObjectNotFound for unknown ids and InvalidTransition when the
// order is not in CREATED status; in both cases nothing is scheduled.
func (h StartOrderValidationCommandHandler) Handle(ctx context.Context, cmd StartOrderValidationCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.CanStartValidation(); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	validateCmd, err := NewValidateOrderCommand(cmd.OrderID())
	if err != nil {
		return err
	}

	h.scheduler.Schedule(ValidationTaskName, func(taskCtx context.Context) error {
		return h.validateHandler.Handle(taskCtx, validateCmd)
	})

	return nil
}
