// Package history keeps a bounded, step-indexed record of tree snapshots
// so a renderer can scrub back through the most recent frames.
package history

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/ristretto/v2"
)

// Frame is one recorded snapshot.
type Frame[S any] struct {
	Step  uint64
	Label string
	State S
}

// Timeline stores frames in a ristretto cache keyed by step number. It
// holds a sliding window of the last capacity steps: recording a frame
// drops the one that just left the window, so the cache never fills up
// and its own eviction policy never picks a victim. Each frame costs 1.
// Record is meant for a single writer; readers may be concurrent.
type Timeline[S any] struct {
	cache    *ristretto.Cache[uint64, Frame[S]]
	capacity int64
	next     atomic.Uint64
}

func NewTimeline[S any](capacity int64) (*Timeline[S], error) {
	if capacity <= 0 {
		return nil, errors.Newf("history: capacity must be positive, got %d", capacity)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, Frame[S]]{
		NumCounters:        capacity * 10,
		MaxCost:            capacity,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "history: create cache")
	}
	return &Timeline[S]{cache: cache, capacity: capacity}, nil
}

// Record stores s as the next frame and returns its step number. Steps
// start at 1.
func (t *Timeline[S]) Record(label string, s S) uint64 {
	step := t.next.Add(1)
	if window := uint64(t.capacity); step > window {
		t.cache.Del(step - window)
	}
	t.cache.Set(step, Frame[S]{Step: step, Label: label, State: s}, 1)
	return step
}

// At returns the frame recorded under step if step is one of the last
// capacity steps. Call Wait first to see frames recorded just before.
func (t *Timeline[S]) At(step uint64) (Frame[S], bool) {
	latest := t.next.Load()
	if step == 0 || step > latest || latest-step >= uint64(t.capacity) {
		return Frame[S]{}, false
	}
	return t.cache.Get(step)
}

// Oldest is the first step still inside the window, 0 when empty.
func (t *Timeline[S]) Oldest() uint64 {
	latest := t.next.Load()
	if latest == 0 {
		return 0
	}
	if window := uint64(t.capacity); latest > window {
		return latest - window + 1
	}
	return 1
}

// Latest returns the most recently recorded frame.
func (t *Timeline[S]) Latest() (Frame[S], bool) {
	step := t.next.Load()
	if step == 0 {
		return Frame[S]{}, false
	}
	return t.At(step)
}

// Len is the number of frames ever recorded, evicted ones included.
func (t *Timeline[S]) Len() uint64 {
	return t.next.Load()
}

func (t *Timeline[S]) Capacity() int64 {
	return t.capacity
}

// Wait blocks until every Record so far is visible to At.
func (t *Timeline[S]) Wait() {
	t.cache.Wait()
}

func (t *Timeline[S]) Close() {
	t.cache.Close()
}
