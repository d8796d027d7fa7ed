// Package activity keeps the bounded audit log of administrative actions.
package activity

import (
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/events"
	"github.com/kizzez/cafeadmin/internal/store"
)

// MaxEntries bounds the activity log; the oldest entries are evicted
const MaxEntries = 200

type Recorder struct {
	gw  store.Gateway
	bus EventBus.Bus
	now func() time.Time
}

func NewRecorder(gw store.Gateway, bus EventBus.Bus) *Recorder {
	return &Recorder{gw: gw, bus: bus, now: time.Now}
}

// SetClock overrides the timestamp source (used in tests)
func (r *Recorder) SetClock(now func() time.Time) {
	r.now = now
}

// Record prepends an entry with the current timestamp and truncates the
// log to the most recent MaxEntries. Empty text is ignored. Storage
// failures are logged, not surfaced; the audit log never aborts the
// mutation that triggered it.
func (r *Recorder) Record(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	entries, err := store.Read[domain.ActivityEntry](r.gw, domain.CollectionActivity)
	if err != nil {
		zap.S().Errorf("activity read failed: %s", err)
		return
	}
	entries = append([]domain.ActivityEntry{{Time: r.now(), Text: text}}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	if err := store.Write(r.gw, domain.CollectionActivity, entries); err != nil {
		zap.S().Errorf("activity write failed: %s", err)
		return
	}
	r.bus.Publish(events.TopicActivity, entries)
}

// List returns the log, most recent first
func (r *Recorder) List() ([]domain.ActivityEntry, error) {
	return store.Read[domain.ActivityEntry](r.gw, domain.CollectionActivity)
}

// Clear wipes the whole log
func (r *Recorder) Clear() error {
	if err := store.Write[domain.ActivityEntry](r.gw, domain.CollectionActivity, nil); err != nil {
		return err
	}
	r.bus.Publish(events.TopicActivity, []domain.ActivityEntry{})
	return nil
}
