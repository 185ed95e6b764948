package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
)

// SignUpRequest is the request body for account creation.
type SignUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
	IsStaff  bool   `json:"is_staff"`
}

// SignUpResponse confirms account creation.
type SignUpResponse struct {
	Message  string `json:"message"`
	UserName string `json:"user_name"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PlaceOrderRequest is the request body for placing an order. An omitted or
// unrecognized pizza size falls back to SMALL.
type PlaceOrderRequest struct {
	Quantity  int    `json:"quantity"`
	PizzaSize string `json:"pizza_size"`
}

// UpdateOrderRequest is the request body for editing a pending order.
// Omitted fields keep their current values.
type UpdateOrderRequest struct {
	Quantity  *int    `json:"quantity"`
	PizzaSize *string `json:"pizza_size"`
}

// UpdateStatusRequest is the request body for the administrator status change.
type UpdateStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

// OrderModel is the wire representation of an order.
type OrderModel struct {
	ID          string    `json:"id"`
	Quantity    int       `json:"quantity"`
	PizzaSize   string    `json:"pizza_size"`
	OrderStatus string    `json:"order_status"`
	TotalAmount float64   `json:"total_amount"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// orderModelFromDomain maps an order aggregate to its wire representation.
func orderModelFromDomain(o *order.Order) OrderModel {
	return OrderModel{
		ID:          o.ID().String(),
		Quantity:    o.Quantity(),
		PizzaSize:   o.Size().String(),
		OrderStatus: o.Status().String(),
		TotalAmount: o.TotalAmount(),
		UserID:      o.UserID().String(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// orderModelFromResponse maps a query read model to its wire representation.
func orderModelFromResponse(resp queries.OrderResponse) OrderModel {
	return OrderModel{
		ID:          resp.ID.String(),
		Quantity:    resp.Quantity,
		PizzaSize:   resp.PizzaSize.String(),
		OrderStatus: resp.OrderStatus.String(),
		TotalAmount: resp.TotalAmount,
		UserID:      resp.UserID.String(),
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}

// orderModelsFromResponses maps a list of read models.
func orderModelsFromResponses(resps []queries.OrderResponse) []OrderModel {
	models := make([]OrderModel, len(resps))
	for i, resp := range resps {
		models[i] = orderModelFromResponse(resp)
	}
	return models
}
