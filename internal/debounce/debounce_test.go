package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []int
}

func (r *recorder) record(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.calls))
	copy(out, r.calls)
	return out
}

func TestBurstCollapsesToLastPayload(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, time.Second, rec.record)

	for i := 1; i <= 5; i++ {
		d.Trigger(i)
	}

	time.Sleep(200 * time.Millisecond)
	require.Equal(t, []int{5}, rec.snapshot())
}

func TestMaxWaitBoundsLatencyUnderContinuousTriggering(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, 150*time.Millisecond, rec.record)

	// trigger faster than the quiet window for well past maxWait
	stop := time.Now().Add(400 * time.Millisecond)
	i := 0
	for time.Now().Before(stop) {
		i++
		d.Trigger(i)
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	calls := rec.snapshot()
	// without the max-wait bound nothing would fire until the loop ends;
	// with it at least two deliveries happen during 400ms of triggering
	assert.GreaterOrEqual(t, len(calls), 2)
}

func TestFlushDeliversImmediately(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, time.Hour, rec.record)

	d.Trigger(42)
	d.Flush()

	require.Equal(t, []int{42}, rec.snapshot())
}

func TestStopDropsPending(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, time.Second, rec.record)

	d.Trigger(1)
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	d.Trigger(2)
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "stopped debouncer must ignore triggers")
}

func TestFlushWithoutPendingIsNoop(t *testing.T) {
	rec := &recorder{}
	d := New(time.Millisecond, time.Millisecond, rec.record)
	d.Flush()
	assert.Empty(t, rec.snapshot())
}

func TestGroupKeysAreIndependent(t *testing.T) {
	var mu sync.Mutex
	got := map[string]int{}
	g := NewGroup(20*time.Millisecond, time.Second, func(k string, v int) {
		mu.Lock()
		defer mu.Unlock()
		got[k] = v
	})

	g.Trigger("a", 1)
	g.Trigger("b", 10)
	g.Trigger("a", 2)

	time.Sleep(150 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"a": 2, "b": 10}, got)
}
