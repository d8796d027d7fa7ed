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

type CouponRepository struct {
	gw  store.Gateway
	rec *activity.Recorder
	bus EventBus.Bus
}

func NewCouponRepository(gw store.Gateway, rec *activity.Recorder, bus EventBus.Bus) *CouponRepository {
	return &CouponRepository{gw: gw, rec: rec, bus: bus}
}

// Create normalizes the code (trim + upper) and appends the coupon.
// Missing fields, an out-of-range discount or a duplicate code fail
// validation without touching the store.
func (r *CouponRepository) Create(code string, discount int, expiry string) (domain.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || expiry == "" {
		return domain.Coupon{}, fmt.Errorf("%w: code and expiry are required", ErrValidation)
	}
	if discount < 1 || discount > 100 {
		return domain.Coupon{}, fmt.Errorf("%w: discount must be between 1 and 100", ErrValidation)
	}

	coupons, err := store.Read[domain.Coupon](r.gw, domain.CollectionCoupons)
	if err != nil {
		return domain.Coupon{}, err
	}
	for _, c := range coupons {
		if c.Code == code {
			return domain.Coupon{}, fmt.Errorf("%w: coupon code %s already exists", ErrValidation, code)
		}
	}

	coupon := domain.Coupon{Code: code, Discount: discount, Expiry: expiry}
	coupons = append(coupons, coupon)
	if err := store.Write(r.gw, domain.CollectionCoupons, coupons); err != nil {
		return domain.Coupon{}, err
	}

	r.rec.Record("Cupón creado: " + code)
	r.bus.Publish(events.TopicCoupons, coupons)
	return coupon, nil
}

// Delete removes the coupon by exact code match; absent codes are a no-op
func (r *CouponRepository) Delete(code string) error {
	coupons, err := store.Read[domain.Coupon](r.gw, domain.CollectionCoupons)
	if err != nil {
		return err
	}

	found := false
	kept := coupons[:0]
	for _, c := range coupons {
		if c.Code == code {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil
	}

	if err := store.Write(r.gw, domain.CollectionCoupons, kept); err != nil {
		return err
	}

	r.rec.Record("Cupón eliminado: " + code)
	r.bus.Publish(events.TopicCoupons, kept)
	return nil
}

// List returns all coupons in insertion order
func (r *CouponRepository) List() ([]domain.Coupon, error) {
	return store.Read[domain.Coupon](r.gw, domain.CollectionCoupons)
}
