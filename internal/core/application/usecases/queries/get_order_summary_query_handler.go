package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler aggregates order counts grouped by status.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for backlog summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the summary query. Statuses with no orders are reported
// with a zero count so the response shape is stable.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	resp := GetOrderSummaryQueryResponse{
		Counts: make(map[string]int64),
	}
	for _, status := range order.AllStatuses() {
		resp.Counts[status.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			status, 
			COUNT(*) 
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderSummaryQueryResponse{}, err
		}

		resp.Counts[order.Status(status).String()] = count
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return resp, nil
}
