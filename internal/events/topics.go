// Package events names the bus topics that carry the
// re-render-on-mutation contract between repositories and views.
package events

const (
	TopicProducts  = "render:products"
	TopicOrders    = "render:orders"
	TopicCoupons   = "render:coupons"
	TopicActivity  = "render:activity"
	TopicDashboard = "render:dashboard"
)
