// Package dashboard derives summary statistics from the stored
// collections on demand. It holds no persisted state of its own.
package dashboard

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/store"
)

// RecentOrdersLimit caps the dashboard's recent-orders list
const RecentOrdersLimit = 6

// Stats is one dashboard snapshot
type Stats struct {
	TotalOrders       int            `json:"total_orders"`
	OrdersToday       int            `json:"orders_today"`
	Revenue           float64        `json:"revenue"`
	AverageOrderValue float64        `json:"average_order_value"`
	ProductCount      int            `json:"product_count"`
	StockTotal        int            `json:"stock_total"`
	LowStockAlerts    []string       `json:"low_stock_alerts"`
	RecentOrders      []domain.Order `json:"recent_orders"`
	// Satisfaction is mock data in the 80..99 range, not derived from input
	Satisfaction int `json:"satisfaction"`
}

type Aggregator struct {
	gw   store.Gateway
	now  func() time.Time
	rand *rand.Rand
}

func NewAggregator(gw store.Gateway) *Aggregator {
	return &Aggregator{
		gw:   gw,
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetClock overrides the time source (used in tests)
func (a *Aggregator) SetClock(now func() time.Time) { a.now = now }

// SetRand overrides the satisfaction source (used in tests)
func (a *Aggregator) SetRand(r *rand.Rand) { a.rand = r }

// Snapshot derives the current dashboard statistics
func (a *Aggregator) Snapshot() (Stats, error) {
	products, err := store.Read[domain.Product](a.gw, domain.CollectionProducts)
	if err != nil {
		return Stats{}, err
	}
	orders, err := store.Read[domain.Order](a.gw, domain.CollectionOrders)
	if err != nil {
		return Stats{}, err
	}

	now := a.now()
	ny, nm, nd := now.Date()

	stats := Stats{
		TotalOrders:    len(orders),
		ProductCount:   len(products),
		LowStockAlerts: []string{},
		RecentOrders:   []domain.Order{},
		Satisfaction:   80 + a.rand.Intn(20),
	}

	for _, o := range orders {
		stats.Revenue += o.Total
		oy, om, od := o.Date.In(now.Location()).Date()
		if oy == ny && om == nm && od == nd {
			stats.OrdersToday++
		}
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.Revenue / float64(stats.TotalOrders)
	}

	for _, p := range products {
		stats.StockTotal += p.Stock
		if p.LowStock() {
			stats.LowStockAlerts = append(stats.LowStockAlerts, fmt.Sprintf("Stock bajo: %s (%d)", p.Name, p.Stock))
		}
	}

	// last orders by insertion order, most recent first
	for i := len(orders) - 1; i >= 0 && len(stats.RecentOrders) < RecentOrdersLimit; i-- {
		stats.RecentOrders = append(stats.RecentOrders, orders[i])
	}

	return stats, nil
}

// SalesSeries returns units sold per product in catalog order, the
// shape consumed by the chart widget. Products without sales stay in
// the series at zero; items referencing deleted products are skipped.
func (a *Aggregator) SalesSeries() ([]string, []float64, error) {
	products, err := store.Read[domain.Product](a.gw, domain.CollectionProducts)
	if err != nil {
		return nil, nil, err
	}
	orders, err := store.Read[domain.Order](a.gw, domain.CollectionOrders)
	if err != nil {
		return nil, nil, err
	}

	labels := make([]string, len(products))
	values := make([]float64, len(products))
	index := make(map[int64]int, len(products))
	for i, p := range products {
		labels[i] = p.Name
		index[p.ID] = i
	}

	for _, o := range orders {
		for _, it := range o.Items {
			i, ok := index[it.ProductID]
			if !ok {
				continue
			}
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			values[i] += float64(qty)
		}
	}

	return labels, values, nil
}
