// Package debounce coalesces bursts of calls into one delivery: the last
// payload wins, each new call restarts the quiet window, and a max-wait
// bound caps how long delivery can be deferred under continuous triggering.
package debounce

import (
	"sync"
	"time"
)

type Debouncer[T any] struct {
	wait    time.Duration
	maxWait time.Duration
	fn      func(T)

	mu       sync.Mutex
	timer    *time.Timer
	pending  T
	has      bool
	deadline time.Time
	stopped  bool
}

// New builds a debouncer that calls fn with the most recent payload once
// triggers go quiet for `wait`, or at the latest `maxWait` after the first
// trigger of a burst.
func New[T any](wait, maxWait time.Duration, fn func(T)) *Debouncer[T] {
	if maxWait < wait {
		maxWait = wait
	}
	return &Debouncer[T]{wait: wait, maxWait: maxWait, fn: fn}
}

// Trigger records the payload and (re)arms the timer.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	now := time.Now()
	if !d.has {
		d.deadline = now.Add(d.maxWait)
	}
	d.pending = v
	d.has = true

	delay := d.wait
	if remaining := d.deadline.Sub(now); remaining < delay {
		delay = remaining
	}
	if delay < 0 {
		delay = 0
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, d.fire)
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if !d.has || d.stopped {
		d.mu.Unlock()
		return
	}
	v := d.pending
	var zero T
	d.pending = zero
	d.has = false
	d.mu.Unlock()

	d.fn(v)
}

// Flush delivers any pending payload immediately.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Stop drops any pending payload and refuses further triggers.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.has = false
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Group maintains one debouncer per key, created on first trigger.
type Group[K comparable, T any] struct {
	wait    time.Duration
	maxWait time.Duration
	fn      func(K, T)

	mu sync.Mutex
	m  map[K]*Debouncer[T]
}

func NewGroup[K comparable, T any](wait, maxWait time.Duration, fn func(K, T)) *Group[K, T] {
	return &Group[K, T]{wait: wait, maxWait: maxWait, fn: fn, m: make(map[K]*Debouncer[T])}
}

func (g *Group[K, T]) Trigger(key K, v T) {
	g.mu.Lock()
	d, ok := g.m[key]
	if !ok {
		k := key
		d = New(g.wait, g.maxWait, func(v T) { g.fn(k, v) })
		g.m[key] = d
	}
	g.mu.Unlock()
	d.Trigger(v)
}

// Stop drops everything pending across all keys.
func (g *Group[K, T]) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, d := range g.m {
		d.Stop()
	}
}
