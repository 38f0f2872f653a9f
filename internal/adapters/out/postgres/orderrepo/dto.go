// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"orderflow/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to a relational table with an index on status
// for efficient workflow queries.
type OrderDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64
	Quantity  int
	Price     float64
	Status    int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID(),
		ProductID: aggregate.ProductID(),
		Quantity:  aggregate.Quantity(),
		Price:     aggregate.Price(),
		Status:    int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.ID, dto.ProductID, dto.Quantity, dto.Price, order.Status(dto.Status))
}
