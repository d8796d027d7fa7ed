package domain

// LowStockThreshold marks a product as low stock at or below this quantity
const LowStockThreshold = 5

const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// CategoryLabels maps internal category codes to display labels
var CategoryLabels = map[string]string{
	"bebidas-calientes": "Bebidas Calientes",
	"bebidas-frias":     "Bebidas Frías",
	"postres":           "Postres",
	"sandwiches":        "Sandwiches",
}

// Product is a catalog item managed from the admin panel
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Desc     string  `json:"desc"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Image    string  `json:"image"` // URL to product image (optional)
	Status   string  `json:"status"`
}

// LowStock reports whether the product stock is at or below the alert threshold
func (p Product) LowStock() bool {
	return p.Stock <= LowStockThreshold
}
