package view

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/kizzez/cafeadmin/internal/dashboard"
	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/events"
	"github.com/kizzez/cafeadmin/internal/repository"
)

// Sink receives display-ready projections. Implementations adapt them
// to a concrete UI toolkit (tables, widgets, chart).
type Sink interface {
	Products([]ProductRow)
	Orders([]OrderRow)
	Coupons([]CouponRow)
	Activity([]ActivityRow)
	Dashboard(dashboard.Stats)
}

// Binder subscribes projections to the render topics so every mutation
// re-renders the sink deterministically.
type Binder struct {
	bus  EventBus.Bus
	sink Sink
	agg  *dashboard.Aggregator

	mu       sync.Mutex
	filter   repository.ProductFilter
	products []domain.Product
	chart    Chart

	search *Debouncer
}

// Bind subscribes the sink to all render topics
func Bind(bus EventBus.Bus, sink Sink, agg *dashboard.Aggregator) (*Binder, error) {
	b := &Binder{bus: bus, sink: sink, agg: agg}
	b.search = NewDebouncer(DefaultDebounce, b.renderProducts)

	subs := map[string]interface{}{
		events.TopicProducts:  b.onProducts,
		events.TopicOrders:    b.onOrders,
		events.TopicCoupons:   b.onCoupons,
		events.TopicActivity:  b.onActivity,
		events.TopicDashboard: b.onDashboard,
	}
	for topic, handler := range subs {
		if err := bus.Subscribe(topic, handler); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Unbind detaches the sink and cancels any pending search render
func (b *Binder) Unbind() {
	b.search.Stop()
	_ = b.bus.Unsubscribe(events.TopicProducts, b.onProducts)
	_ = b.bus.Unsubscribe(events.TopicOrders, b.onOrders)
	_ = b.bus.Unsubscribe(events.TopicCoupons, b.onCoupons)
	_ = b.bus.Unsubscribe(events.TopicActivity, b.onActivity)
	_ = b.bus.Unsubscribe(events.TopicDashboard, b.onDashboard)
}

// Search updates the text filter after the debounce quiesce period;
// each keystroke resets the timer so only the final render fires.
func (b *Binder) Search(text string) {
	b.mu.Lock()
	b.filter.Text = text
	b.mu.Unlock()
	b.search.Trigger()
}

// SetFilter applies category/status filters immediately
func (b *Binder) SetFilter(filter repository.ProductFilter) {
	b.mu.Lock()
	b.filter = filter
	b.mu.Unlock()
	b.renderProducts()
}

// SetDebounce replaces the search quiesce period (used in tests)
func (b *Binder) SetDebounce(d time.Duration) {
	b.search.Stop()
	b.search = NewDebouncer(d, b.renderProducts)
}

func (b *Binder) onProducts(products []domain.Product) {
	b.mu.Lock()
	b.products = products
	b.mu.Unlock()
	b.renderProducts()
}

func (b *Binder) renderProducts() {
	b.mu.Lock()
	products := b.products
	filter := b.filter
	b.mu.Unlock()
	b.sink.Products(ProductRows(products, filter))
}

func (b *Binder) onOrders(orders []domain.Order) {
	b.sink.Orders(OrderRows(orders))
}

func (b *Binder) onCoupons(coupons []domain.Coupon) {
	b.sink.Coupons(CouponRows(coupons))
}

func (b *Binder) onActivity(entries []domain.ActivityEntry) {
	b.sink.Activity(ActivityRows(entries))
}

// AttachChart redraws the sales chart on every dashboard render
func (b *Binder) AttachChart(ch Chart) {
	b.mu.Lock()
	b.chart = ch
	b.mu.Unlock()
}

func (b *Binder) onDashboard() {
	stats, err := b.agg.Snapshot()
	if err != nil {
		zap.S().Errorf("dashboard snapshot failed: %s", err)
		return
	}
	b.sink.Dashboard(stats)

	b.mu.Lock()
	chart := b.chart
	b.mu.Unlock()
	if chart != nil {
		labels, values, err := b.agg.SalesSeries()
		if err != nil {
			zap.S().Errorf("sales series failed: %s", err)
			return
		}
		chart.Destroy()
		chart.Render(labels, values)
	}
}
