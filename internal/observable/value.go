// Package observable provides a single-writer, many-reader state cell with
// latest-value delivery.
package observable

import (
	"context"
	"sync"
)

// Readable is the read side of a Value, handed to consumers that must not
// write.
type Readable[T any] interface {
	Get() T
	Subscribe(ctx context.Context) <-chan T
}

// Value holds the current state of type T. Writers call Set; readers either
// poll Get or Subscribe to receive every change. A slow subscriber never
// blocks the writer: it only ever sees the most recent value.
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	subs    map[chan T]struct{}
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{current: initial, subs: make(map[chan T]struct{})}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set stores x and notifies all subscribers.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = x
	for ch := range v.subs {
		offer(ch, x)
	}
}

// Update applies fn to the current value under the write lock.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = fn(v.current)
	for ch := range v.subs {
		offer(ch, v.current)
	}
	return v.current
}

// Subscribe returns a channel that first yields the current value and then
// every subsequent one. The channel is closed when ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	ch <- v.current
	v.subs[ch] = struct{}{}
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, ch)
		close(ch)
		v.mu.Unlock()
	}()

	return ch
}

// offer replaces any undelivered value in the one-slot channel with x.
func offer[T any](ch chan T, x T) {
	select {
	case <-ch:
	default:
	}
	ch <- x
}
