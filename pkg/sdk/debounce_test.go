package sdk

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects debounced deliveries.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func (r *recorder) waitFor(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := r.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d deliveries, got %v", n, r.snapshot())
	return nil
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)
	defer d.Stop()

	// A typing burst: only the final text may trigger a fetch.
	d.Input("al")
	d.Input("ali")
	d.Input("alice")

	got := rec.waitFor(t, 1)
	require.Equal(t, []string{"alice"}, got)

	// Nothing else trickles in afterwards.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"alice"}, rec.snapshot())
}

func TestDebouncerSeparateBursts(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Input("first")
	rec.waitFor(t, 1)

	d.Input("second")
	got := rec.waitFor(t, 2)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDebouncerFlush(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(time.Hour, rec.record)
	defer d.Stop()

	d.Input("pending")
	d.Flush()

	got := rec.waitFor(t, 1)
	assert.Equal(t, []string{"pending"}, got)
}

func TestDebouncerFlushWithoutPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(time.Hour, rec.record)

	d.Flush()

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerStopCancels(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Input("doomed")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
