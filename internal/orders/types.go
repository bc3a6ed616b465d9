package orders

import "github.com/angelmondragon/storegate/pkg/enums"

// ProductSummary is the compact product embedded on an order item.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UserSummary is the compact user embedded on an order.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItem is one line of an order. Price is the unit price; LineTotal is
// the extended amount. The backend has shipped records carrying either field
// alone, so normalization derives the missing one from the other.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Product   *ProductSummary `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	LineTotal float64         `json:"lineTotal"`
}

// Order is the canonical order record. Status is passed through as the
// backend sent it; the known states live in enums.OrderStatus and bind only
// on the write path.
type Order struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	User      *UserSummary `json:"user,omitempty"`
	Items     []OrderItem  `json:"items"`
	Total     float64      `json:"total"`
	Status    string       `json:"status"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
}

// CreateOrderItemInput is one requested line on a new order.
type CreateOrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderInput is the payload for placing an order.
type CreateOrderInput struct {
	Items []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusInput moves an order to a new state.
type UpdateStatusInput struct {
	Status enums.OrderStatus `json:"status" validate:"required"`
}

// FindInput is the admin search payload. Zero-value fields are omitted so
// the backend treats them as unfiltered.
type FindInput struct {
	OrderID string `json:"orderId,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Status  string `json:"status,omitempty"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}
