package repository

import (
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizzez/cafeadmin/internal/activity"
	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/store"
)

func newOrderRepo(t *testing.T) (*OrderRepository, *activity.Recorder, store.Gateway) {
	t.Helper()
	gw := store.NewMemGateway()
	bus := EventBus.New()
	rec := activity.NewRecorder(gw, bus)
	require.NoError(t, store.EnsureInitialData(gw))
	return NewOrderRepository(gw, rec, bus), rec, gw
}

func TestOrderSetStatus(t *testing.T) {
	repo, rec, _ := newOrderRepo(t)

	require.NoError(t, repo.SetStatus(102, domain.OrderCompleted))

	o, err := repo.Get(102)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, o.Status)

	entries, err := rec.List()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Pedido #102 cambiado a completed", entries[0].Text)
}

func TestOrderSetStatusUnknownStatus(t *testing.T) {
	repo, _, _ := newOrderRepo(t)

	err := repo.SetStatus(102, "shipped")
	assert.ErrorIs(t, err, ErrValidation)

	o, err := repo.Get(102)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderOnWay, o.Status, "failed transition leaves order untouched")
}

func TestOrderSetStatusAbsentIsSilentNoOp(t *testing.T) {
	repo, rec, _ := newOrderRepo(t)

	require.NoError(t, repo.SetStatus(999, domain.OrderPending))

	entries, err := rec.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOrderDelete(t *testing.T) {
	repo, rec, _ := newOrderRepo(t)

	require.NoError(t, repo.Delete(101))

	_, err := repo.Get(101)
	assert.ErrorIs(t, err, ErrNotFound)

	orders, err := repo.List(OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	// absent id: collection unchanged, no activity entry
	before, err := rec.List()
	require.NoError(t, err)
	require.NoError(t, repo.Delete(101))
	after, err := rec.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestOrderListStatusFilter(t *testing.T) {
	repo, _, _ := newOrderRepo(t)

	completed, err := repo.List(OrderFilter{Status: domain.OrderCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, int64(101), completed[0].ID)

	all, err := repo.List(OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderDetailResolvesProductNames(t *testing.T) {
	repo, _, _ := newOrderRepo(t)

	detail, err := repo.Detail(101)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "Café Capuchino", detail.Lines[0].Name)
	assert.Equal(t, 1, detail.Lines[0].Quantity)
}

func TestOrderDetailFallsBackToIDForDeletedProduct(t *testing.T) {
	repo, _, gw := newOrderRepo(t)

	// remove the catalog entirely; orders must not cascade-delete
	require.NoError(t, store.Write[domain.Product](gw, domain.CollectionProducts, nil))

	detail, err := repo.Detail(102)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "ID 2", detail.Lines[0].Name)
	assert.Equal(t, 2, detail.Lines[0].Quantity)

	_, err = repo.Detail(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderIDsNeverReassigned(t *testing.T) {
	repo, _, gw := newOrderRepo(t)

	require.NoError(t, repo.Delete(103))

	orders, err := store.Read[domain.Order](gw, domain.CollectionOrders)
	require.NoError(t, err)
	for _, o := range orders {
		assert.NotEqual(t, int64(103), o.ID)
		assert.False(t, o.Date.After(time.Now()))
	}
}
