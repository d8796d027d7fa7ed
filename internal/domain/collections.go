package domain

// Collection names the persisted key of one of the four stored arrays.
// The _v2 suffix tracks the persisted layout version of the original site.
type Collection string

const (
	CollectionProducts Collection = "cafeProducts_v2"
	CollectionOrders   Collection = "cafeOrders_v2"
	CollectionActivity Collection = "cafeActivity_v2"
	CollectionCoupons  Collection = "cafeCoupons_v2"
)

// Collections lists every persisted collection
var Collections = []Collection{
	CollectionProducts,
	CollectionOrders,
	CollectionActivity,
	CollectionCoupons,
}
