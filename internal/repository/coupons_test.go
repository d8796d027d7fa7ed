package repository

import (
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizzez/cafeadmin/internal/activity"
	"github.com/kizzez/cafeadmin/internal/store"
)

func newCouponRepo(t *testing.T) (*CouponRepository, *activity.Recorder) {
	t.Helper()
	gw := store.NewMemGateway()
	bus := EventBus.New()
	rec := activity.NewRecorder(gw, bus)
	return NewCouponRepository(gw, rec, bus), rec
}

func TestCouponCreateNormalizesCode(t *testing.T) {
	repo, _ := newCouponRepo(t)

	c, err := repo.Create("  verano10 ", 50, "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, "VERANO10", c.Code)
	assert.Equal(t, 50, c.Discount)

	coupons, err := repo.List()
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "VERANO10", coupons[0].Code)
}

func TestCouponCreateValidation(t *testing.T) {
	repo, _ := newCouponRepo(t)

	tests := []struct {
		name     string
		code     string
		discount int
		expiry   string
	}{
		{"missing code", "", 10, "2026-01-31"},
		{"missing expiry", "CAFE10", 10, ""},
		{"discount too low", "CAFE10", 0, "2026-01-31"},
		{"discount too high", "CAFE10", 150, "2026-01-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(tt.code, tt.discount, tt.expiry)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	coupons, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, coupons)
}

func TestCouponCreateRejectsDuplicateCode(t *testing.T) {
	repo, _ := newCouponRepo(t)

	_, err := repo.Create("CAFE10", 10, "2026-01-31")
	require.NoError(t, err)

	// normalization makes these the same code
	_, err = repo.Create("cafe10", 20, "2026-06-30")
	assert.ErrorIs(t, err, ErrValidation)

	coupons, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, coupons, 1)
}

func TestCouponDelete(t *testing.T) {
	repo, rec := newCouponRepo(t)

	_, err := repo.Create("CAFE10", 10, "2026-01-31")
	require.NoError(t, err)

	require.NoError(t, repo.Delete("CAFE10"))

	coupons, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, coupons)

	// exact-match only, absent code is a no-op without activity
	before, err := rec.List()
	require.NoError(t, err)
	require.NoError(t, repo.Delete("cafe10"))
	after, err := rec.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
