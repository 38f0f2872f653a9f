package queries

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

const (
	// MinPageLimit is the smallest accepted page size.
	MinPageLimit = 1
	// MaxPageLimit caps a single page to protect the read side.
	MaxPageLimit = 100
	// DefaultPageLimit is applied when the caller does not specify a limit.
	DefaultPageLimit = 10
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of orders sorted by identifier.
//
// Example:
//
//	query, err := NewListOrdersQuery(20, 0)
//	if err != nil {
//	    return err
//	}
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type ListOrdersQuery struct {
	guard guard.ConstructorGuard

	limit  int
	offset int
}

// NewListOrdersQuery creates a paged listing query.
// The limit must be within [MinPageLimit, MaxPageLimit] and the offset non-negative.
func NewListOrdersQuery(limit, offset int) (ListOrdersQuery, error) {
	if limit < MinPageLimit || limit > MaxPageLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, MinPageLimit, MaxPageLimit)
	}
	if offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return ListOrdersQuery{
		guard:  guard.NewConstructorGuard(),
		limit:  limit,
		offset: offset,
	}, nil
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of leading orders to skip.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
