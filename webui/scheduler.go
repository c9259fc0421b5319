package webui

import (
	"sync"
	"time"
)

type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler runs callbacks on Go's runtime timers.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Timers keeps at most one pending timer per key. Scheduling a key again
// replaces the earlier timer.
type Timers struct {
	sched Scheduler

	mu      sync.Mutex
	seq     uint64
	pending map[interface{}]pendingTimer
}

type pendingTimer struct {
	id    uint64
	timer Timer
}

func NewTimers(sched Scheduler) *Timers {
	if sched == nil {
		sched = RealScheduler{}
	}
	return &Timers{sched: sched, pending: make(map[interface{}]pendingTimer)}
}

func (t *Timers) Schedule(key interface{}, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if p, ok := t.pending[key]; ok {
		p.timer.Stop()
	}
	t.seq++
	id := t.seq
	timer := t.sched.AfterFunc(d, func() {
		t.mu.Lock()
		// a newer Schedule for the same key may have replaced us
		if p, ok := t.pending[key]; !ok || p.id != id {
			t.mu.Unlock()
			return
		}
		delete(t.pending, key)
		t.mu.Unlock()
		fn()
	})
	t.pending[key] = pendingTimer{id: id, timer: timer}
}

// Cancel stops the pending timer for key and reports whether there was one.
func (t *Timers) Cancel(key interface{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.pending[key]
	if !ok {
		return false
	}
	delete(t.pending, key)
	p.timer.Stop()
	return true
}

func (t *Timers) CancelAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, p := range t.pending {
		p.timer.Stop()
		delete(t.pending, key)
	}
}

// Len is the number of timers still pending.
func (t *Timers) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
