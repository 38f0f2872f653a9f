package queries

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery reports how many orders sit in each workflow status.
// Used for backlog monitoring rather than order management.
//
// Example:
//
//	query := NewGetOrderSummaryQuery()
//	handler := NewGetOrderSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order summary: %w", err)
//	}
//
//	fmt.Printf("%d orders awaiting validation\n", summary.Counts["CREATED"])
type GetOrderSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for per-status order counts.
// This is a parameterless query covering the whole orders table.
func NewGetOrderSummaryQuery() GetOrderSummaryQuery {
	return GetOrderSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// GetOrderSummaryQueryResponse holds per-status order counts.
// Every workflow status appears as a key, including those with zero orders.
type GetOrderSummaryQueryResponse struct {
	Total  int64            `json:"total"`
	Counts map[string]int64 `json:"counts"`
}
