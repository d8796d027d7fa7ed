package domain

// Coupon is a discount code. Codes are stored trimmed and upper-cased,
// and are unique after normalization.
type Coupon struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"` // percent, 1..100
	Expiry   string `json:"expiry"`   // YYYY-MM-DD
}
