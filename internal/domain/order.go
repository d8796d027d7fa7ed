package domain

import "time"

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderOnWay     = "on_way"
	OrderCompleted = "completed"
)

// OrderStatusLabels maps order status codes to display labels
var OrderStatusLabels = map[string]string{
	OrderPending:   "Pendiente",
	OrderPreparing: "Preparando",
	OrderOnWay:     "En camino",
	OrderCompleted: "Completado",
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	_, ok := OrderStatusLabels[s]
	return ok
}

// OrderItem is a single line in an order
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"q"`
}

// Order is a customer order tracked from the admin panel.
// The ID is assigned once and never reused.
type Order struct {
	ID       int64       `json:"id"`
	Customer string      `json:"customer"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
	Status   string      `json:"status"`
	Date     time.Time   `json:"date"`
}
