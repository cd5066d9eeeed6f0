// Package scope runs the background work of one screen. Tasks execute one at
// a time in submission order and are cancelled when the screen closes.
package scope

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

var ErrClosed = errors.New("scope closed")

type Task func(ctx context.Context)

type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	g      *errgroup.Group
	tasks  chan Task

	mu     sync.Mutex
	closed bool
}

// New starts the scope's worker goroutine. The scope ends when parent is done
// or Close is called.
func New(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	s := &Scope{
		ctx:    ctx,
		cancel: cancel,
		g:      &errgroup.Group{},
		tasks:  make(chan Task, 64),
	}
	s.g.Go(s.loop)
	return s
}

func (s *Scope) Context() context.Context { return s.ctx }

func (s *Scope) loop() error {
	for {
		select {
		case t := <-s.tasks:
			if s.ctx.Err() != nil {
				return nil
			}
			t(s.ctx)
		case <-s.ctx.Done():
			return nil
		}
	}
}

// Launch queues t. It fails once the scope is closed.
func (s *Scope) Launch(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.ctx.Err() != nil {
		return ErrClosed
	}
	select {
	case s.tasks <- t:
		return nil
	case <-s.ctx.Done():
		return ErrClosed
	}
}

// Go runs t on its own goroutine alongside the serial worker. Use it for
// long-lived collectors that would otherwise block queued tasks.
func (s *Scope) Go(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.ctx.Err() != nil {
		return ErrClosed
	}
	s.g.Go(func() error {
		t(s.ctx)
		return nil
	})
	return nil
}

// Await queues t and waits for it to finish.
func (s *Scope) Await(t Task) error {
	done := make(chan struct{})
	if err := s.Launch(func(ctx context.Context) {
		defer close(done)
		t(ctx)
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-s.ctx.Done():
		return ErrClosed
	}
}

// Close cancels running and pending tasks and waits for the worker to exit.
func (s *Scope) Close() {
	s.cancel()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	_ = s.g.Wait()
}
