// Package repository layers entity CRUD, validation and id assignment
// on top of the storage gateway. Every mutation persists the collection,
// records an activity entry and publishes a render event.
package repository

import (
	"fmt"
	"strings"

	"github.com/asaskevich/EventBus"

	"github.com/kizzez/cafeadmin/internal/activity"
	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/events"
	"github.com/kizzez/cafeadmin/internal/store"
)

// ProductFields carries form input for create and update. Nil fields
// keep the prior value on update and fall back to defaults on create.
type ProductFields struct {
	Name     *string
	Desc     *string
	Price    *float64
	Stock    *int
	Category *string
	Image    *string
	Status   *string
}

// ProductFilter composes with AND; empty fields match everything.
// Category and status values are matched as-is, without enum checks.
type ProductFilter struct {
	Text     string
	Category string
	Status   string
}

type ProductRepository struct {
	gw  store.Gateway
	rec *activity.Recorder
	bus EventBus.Bus
}

func NewProductRepository(gw store.Gateway, rec *activity.Recorder, bus EventBus.Bus) *ProductRepository {
	return &ProductRepository{gw: gw, rec: rec, bus: bus}
}

func (f ProductFields) apply(p domain.Product) domain.Product {
	if f.Name != nil {
		p.Name = strings.TrimSpace(*f.Name)
	}
	if f.Desc != nil {
		p.Desc = strings.TrimSpace(*f.Desc)
	}
	if f.Price != nil {
		p.Price = *f.Price
	}
	if f.Stock != nil {
		p.Stock = *f.Stock
	}
	if f.Category != nil {
		p.Category = *f.Category
	}
	if f.Image != nil {
		p.Image = strings.TrimSpace(*f.Image)
	}
	if f.Status != nil {
		p.Status = *f.Status
	}
	return p
}

func validateProduct(p domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	if p.Status != domain.ProductActive && p.Status != domain.ProductInactive {
		return fmt.Errorf("%w: status must be active or inactive", ErrValidation)
	}
	return nil
}

// Create validates the fields, assigns the next id and appends the
// product. Nothing is persisted when validation fails.
func (r *ProductRepository) Create(f ProductFields) (domain.Product, error) {
	products, err := store.Read[domain.Product](r.gw, domain.CollectionProducts)
	if err != nil {
		return domain.Product{}, err
	}

	p := f.apply(domain.Product{Status: domain.ProductActive})
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}

	ids := make([]int64, len(products))
	for i, existing := range products {
		ids[i] = existing.ID
	}
	p.ID = nextID(ids)

	products = append(products, p)
	if err := store.Write(r.gw, domain.CollectionProducts, products); err != nil {
		return domain.Product{}, err
	}

	r.rec.Record(fmt.Sprintf("Producto creado: %s (ID %d)", p.Name, p.ID))
	r.publish(products)
	return p, nil
}

// Update merges the provided fields into the stored product and
// re-validates the result
func (r *ProductRepository) Update(id int64, f ProductFields) (domain.Product, error) {
	products, err := store.Read[domain.Product](r.gw, domain.CollectionProducts)
	if err != nil {
		return domain.Product{}, err
	}

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Product{}, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	merged := f.apply(products[idx])
	merged.ID = id
	if err := validateProduct(merged); err != nil {
		return domain.Product{}, err
	}

	products[idx] = merged
	if err := store.Write(r.gw, domain.CollectionProducts, products); err != nil {
		return domain.Product{}, err
	}

	r.rec.Record(fmt.Sprintf("Producto editado: %s (ID %d)", merged.Name, id))
	r.publish(products)
	return merged, nil
}

// Delete removes the product by id. Absent ids are a no-op: no write,
// no activity entry.
func (r *ProductRepository) Delete(id int64) error {
	products, err := store.Read[domain.Product](r.gw, domain.CollectionProducts)
	if err != nil {
		return err
	}

	var removed *domain.Product
	kept := products[:0]
	for _, p := range products {
		if p.ID == id {
			deleted := p
			removed = &deleted
			continue
		}
		kept = append(kept, p)
	}
	if removed == nil {
		return nil
	}

	if err := store.Write(r.gw, domain.CollectionProducts, kept); err != nil {
		return err
	}

	r.rec.Record(fmt.Sprintf("Producto eliminado: %s (ID %d)", removed.Name, id))
	r.publish(kept)
	return nil
}

// Get returns the product by id
func (r *ProductRepository) Get(id int64) (domain.Product, error) {
	products, err := store.Read[domain.Product](r.gw, domain.CollectionProducts)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%w: product %d", ErrNotFound, id)
}

// List returns products matching the filter, in insertion order.
// The text filter is a case-insensitive substring match on name or
// description.
func (r *ProductRepository) List(filter ProductFilter) ([]domain.Product, error) {
	products, err := store.Read[domain.Product](r.gw, domain.CollectionProducts)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, filter), nil
}

// FilterProducts applies the AND-composed filter to an in-memory slice
func FilterProducts(products []domain.Product, filter ProductFilter) []domain.Product {
	out := []domain.Product{}
	text := strings.ToLower(strings.TrimSpace(filter.Text))
	for _, p := range products {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Desc), text) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *ProductRepository) publish(products []domain.Product) {
	r.bus.Publish(events.TopicProducts, products)
	r.bus.Publish(events.TopicDashboard)
}
