// Package orderrepo provides data transfer objects and mapping functions for
// converting between order domain aggregates and their database representation.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Size and status are stored as their canonical uppercase names.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null"`
	PizzaSize   string    `gorm:"type:varchar(20);not null"`
	OrderStatus string    `gorm:"type:varchar(20);not null"`
	TotalAmount float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Bytes(),
		UserID:      o.UserID().Bytes(),
		Quantity:    o.Quantity(),
		PizzaSize:   o.Size().String(),
		OrderStatus: o.Status().String(),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.OrderStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.Quantity,
		order.ParsePizzaSize(dto.PizzaSize),
		status,
		dto.TotalAmount,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
