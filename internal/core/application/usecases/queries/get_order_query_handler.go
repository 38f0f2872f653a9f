package queries

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order from the database.
// Bypasses the domain aggregate and maps the row straight into a response.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order, or an object-not-found
// error when no row matches the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT 
			id, 
			product_id, 
			quantity, 
			price, 
			status 
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.ProductID,
		&resp.Quantity,
		&resp.Price,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError(
				"order", strconv.FormatInt(query.OrderID(), 10))
		}
		return OrderResponse{}, err
	}

	resp.Status = order.Status(status).String()
	return resp, nil
}
