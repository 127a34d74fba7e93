package service

import (
	"context"
	"sync"
	"time"
)

// Snapshot is an immutable, point-in-time copy of a collection. Records must
// not be modified by receivers.
type Snapshot[T any] struct {
	Version uint64
	Records []T
	TakenAt time.Time
}

// Loader reads the full ordered collection from storage.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Feed holds the latest snapshot of one collection and pushes every new
// snapshot to its subscribers. Each subscriber channel buffers one snapshot;
// an undelivered snapshot is replaced by the newer one.
type Feed[T any] struct {
	load Loader[T]

	// refreshMu keeps load+publish pairs ordered so an older read can never
	// overwrite a newer one.
	refreshMu sync.Mutex

	mu      sync.Mutex
	latest  Snapshot[T]
	subs    map[uint64]chan Snapshot[T]
	nextSub uint64
	closed  bool
}

func NewFeed[T any](load func(ctx context.Context) ([]T, error)) *Feed[T] {
	return &Feed[T]{
		load:   load,
		latest: Snapshot[T]{Records: []T{}},
		subs:   make(map[uint64]chan Snapshot[T]),
	}
}

func (f *Feed[T]) Latest() Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

// Subscribe returns a channel that immediately holds the current snapshot,
// and a cancel func that closes it. The channel is also closed by Close.
func (f *Feed[T]) Subscribe() (<-chan Snapshot[T], func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan Snapshot[T], 1)
	if f.closed {
		close(ch)
		return ch, func() {}
	}

	id := f.nextSub
	f.nextSub++
	f.subs[id] = ch
	ch <- f.latest

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Refresh reloads the collection and publishes it.
func (f *Feed[T]) Refresh(ctx context.Context) (Snapshot[T], error) {
	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	records, err := f.load(ctx)
	if err != nil {
		return Snapshot[T]{}, err
	}
	return f.Publish(records), nil
}

// Publish replaces the latest snapshot wholesale. records is copied.
func (f *Feed[T]) Publish(records []T) Snapshot[T] {
	owned := make([]T, len(records))
	copy(owned, records)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return f.latest
	}

	f.latest = Snapshot[T]{
		Version: f.latest.Version + 1,
		Records: owned,
		TakenAt: time.Now().UTC(),
	}

	for _, ch := range f.subs {
		deliver(ch, f.latest)
	}
	return f.latest
}

// deliver never blocks: it drops the pending snapshot before sending. Callers
// hold f.mu, so no other sender can refill the slot in between.
func deliver[T any](ch chan Snapshot[T], snap Snapshot[T]) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- snap
}

// Close closes every subscriber channel. Later publishes are ignored.
func (f *Feed[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
