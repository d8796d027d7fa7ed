package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizzez/cafeadmin/internal/store"
)

func newRecorder() *Recorder {
	return NewRecorder(store.NewMemGateway(), EventBus.New())
}

func TestRecordPrependsNewestFirst(t *testing.T) {
	r := newRecorder()
	base := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)
	tick := 0
	r.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	r.Record("Producto creado: Café Latte (ID 4)")
	r.Record("Pedido #102 cambiado a completed")

	entries, err := r.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Pedido #102 cambiado a completed", entries[0].Text)
	assert.Equal(t, "Producto creado: Café Latte (ID 4)", entries[1].Text)
	assert.True(t, entries[0].Time.After(entries[1].Time))
}

func TestRecordCapsAtMaxEntries(t *testing.T) {
	r := newRecorder()
	for i := 1; i <= MaxEntries+1; i++ {
		r.Record(fmt.Sprintf("entry %d", i))
	}

	entries, err := r.List()
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)
	// the oldest entry has been evicted; the newest 200 remain, newest first
	assert.Equal(t, fmt.Sprintf("entry %d", MaxEntries+1), entries[0].Text)
	assert.Equal(t, "entry 2", entries[MaxEntries-1].Text)
	for _, e := range entries {
		assert.NotEqual(t, "entry 1", e.Text)
	}
}

func TestRecordIgnoresEmptyText(t *testing.T) {
	r := newRecorder()
	r.Record("")
	r.Record("   ")

	entries, err := r.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClear(t *testing.T) {
	r := newRecorder()
	r.Record("Cupón creado: VERANO10")
	require.NoError(t, r.Clear())

	entries, err := r.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordPublishesRenderEvent(t *testing.T) {
	bus := EventBus.New()
	r := NewRecorder(store.NewMemGateway(), bus)

	published := 0
	require.NoError(t, bus.Subscribe("render:activity", func(interface{}) {
		published++
	}))

	r.Record("Exportó productos a CSV")
	assert.Equal(t, 1, published)
}
