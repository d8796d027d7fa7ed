package repository

import (
	"fmt"

	"github.com/asaskevich/EventBus"

	"github.com/kizzez/cafeadmin/internal/activity"
	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/events"
	"github.com/kizzez/cafeadmin/internal/store"
)

type OrderFilter struct {
	Status string
}

// OrderLine is one resolved order item for display
type OrderLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"q"`
}

// OrderDetail is an order with its items resolved against the catalog
type OrderDetail struct {
	Order domain.Order `json:"order"`
	Lines []OrderLine  `json:"lines"`
}

type OrderRepository struct {
	gw  store.Gateway
	rec *activity.Recorder
	bus EventBus.Bus
}

func NewOrderRepository(gw store.Gateway, rec *activity.Recorder, bus EventBus.Bus) *OrderRepository {
	return &OrderRepository{gw: gw, rec: rec, bus: bus}
}

// SetStatus updates the order status in place. An unknown status is a
// validation error; an absent id is a silent no-op.
func (r *OrderRepository) SetStatus(id int64, status string) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}

	orders, err := store.Read[domain.Order](r.gw, domain.CollectionOrders)
	if err != nil {
		return err
	}

	idx := -1
	for i, o := range orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	orders[idx].Status = status
	if err := store.Write(r.gw, domain.CollectionOrders, orders); err != nil {
		return err
	}

	r.rec.Record(fmt.Sprintf("Pedido #%d cambiado a %s", id, status))
	r.publish(orders)
	return nil
}

// Delete removes the order by id; absent ids are a no-op
func (r *OrderRepository) Delete(id int64) error {
	orders, err := store.Read[domain.Order](r.gw, domain.CollectionOrders)
	if err != nil {
		return err
	}

	found := false
	kept := orders[:0]
	for _, o := range orders {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return nil
	}

	if err := store.Write(r.gw, domain.CollectionOrders, kept); err != nil {
		return err
	}

	r.rec.Record(fmt.Sprintf("Pedido eliminado: #%d", id))
	r.publish(kept)
	return nil
}

// Get returns the order by id
func (r *OrderRepository) Get(id int64) (domain.Order, error) {
	orders, err := store.Read[domain.Order](r.gw, domain.CollectionOrders)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("%w: order %d", ErrNotFound, id)
}

// List returns orders in insertion order, optionally filtered by status
func (r *OrderRepository) List(filter OrderFilter) ([]domain.Order, error) {
	orders, err := store.Read[domain.Order](r.gw, domain.CollectionOrders)
	if err != nil {
		return nil, err
	}
	if filter.Status == "" {
		return orders, nil
	}
	out := []domain.Order{}
	for _, o := range orders {
		if o.Status == filter.Status {
			out = append(out, o)
		}
	}
	return out, nil
}

// Detail resolves each line item against the product catalog. Items
// whose product has been removed keep their line with an "ID <n>"
// display name; orders never cascade-delete on product removal.
func (r *OrderRepository) Detail(id int64) (OrderDetail, error) {
	order, err := r.Get(id)
	if err != nil {
		return OrderDetail{}, err
	}

	products, err := store.Read[domain.Product](r.gw, domain.CollectionProducts)
	if err != nil {
		return OrderDetail{}, err
	}
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	detail := OrderDetail{Order: order, Lines: []OrderLine{}}
	for _, it := range order.Items {
		name, ok := names[it.ProductID]
		if !ok {
			name = fmt.Sprintf("ID %d", it.ProductID)
		}
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		detail.Lines = append(detail.Lines, OrderLine{ProductID: it.ProductID, Name: name, Quantity: qty})
	}
	return detail, nil
}

func (r *OrderRepository) publish(orders []domain.Order) {
	r.bus.Publish(events.TopicOrders, orders)
	r.bus.Publish(events.TopicDashboard)
}
