package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/kizzez/cafeadmin/internal/domain"
)

// sampleProducts are the catalog records seeded on first run
var sampleProducts = []domain.Product{
	{ID: 1, Name: "Café Expresso Doble", Desc: "Doble shot de nuestro café premium", Price: 12.00, Stock: 15, Category: "bebidas-calientes", Status: domain.ProductActive},
	{ID: 2, Name: "Café Expresso", Desc: "Intenso y aromático", Price: 7.00, Stock: 20, Category: "bebidas-calientes", Status: domain.ProductActive},
	{ID: 3, Name: "Café Capuchino", Desc: "Perfecto balance entre espresso y leche", Price: 15.00, Stock: 18, Category: "bebidas-calientes", Status: domain.ProductActive},
	{ID: 4, Name: "Café Latte", Desc: "Suave y cremoso", Price: 9.00, Stock: 22, Category: "bebidas-calientes", Status: domain.ProductActive},
	{ID: 5, Name: "Chocolate Caliente", Desc: "Chocolate belga y leche cremosa", Price: 15.00, Stock: 12, Category: "bebidas-calientes", Status: domain.ProductActive},
	{ID: 6, Name: "Café Mochaccino", Desc: "Chocolate + café", Price: 14.00, Stock: 16, Category: "bebidas-calientes", Status: domain.ProductActive},
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: 101, Customer: "María López", Items: []domain.OrderItem{{ProductID: 3, Quantity: 1}}, Total: 45.00, Status: domain.OrderCompleted, Date: mustParse("2025-08-28T12:45:00Z")},
		{ID: 102, Customer: "Carlos Ruiz", Items: []domain.OrderItem{{ProductID: 2, Quantity: 2}}, Total: 32.50, Status: domain.OrderOnWay, Date: mustParse("2025-08-28T13:15:00Z")},
		{ID: 103, Customer: "Ana Mendoza", Items: []domain.OrderItem{{ProductID: 1, Quantity: 1}}, Total: 28.00, Status: domain.OrderPreparing, Date: mustParse("2025-08-28T14:30:00Z")},
	}
}

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// EnsureInitialData seeds each absent collection: sample products and
// orders, empty activity log and coupon list. Existing data is never
// overwritten, so repeated calls are idempotent.
func EnsureInitialData(g Gateway) error {
	seeded := false
	for _, c := range domain.Collections {
		absent, err := missing(g, c)
		if err != nil {
			return err
		}
		if !absent {
			continue
		}
		switch c {
		case domain.CollectionProducts:
			err = Write(g, c, sampleProducts)
		case domain.CollectionOrders:
			err = Write(g, c, sampleOrders())
		default:
			err = g.WriteRaw(c, []byte("[]"))
		}
		if err != nil {
			return err
		}
		seeded = true
	}

	if seeded {
		zap.L().Info("initialized default collections")
	}
	return nil
}

func missing(g Gateway, c domain.Collection) (bool, error) {
	data, err := g.ReadRaw(c)
	if err != nil {
		return false, err
	}
	return data == nil, nil
}
