// Package workers runs fire-and-forget background jobs on a bounded number of
// goroutines.
package workers

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"golang.org/x/sync/errgroup"
)

type Job func(ctx context.Context) error

type Pool struct {
	ctx    context.Context
	cancel context.CancelFunc
	g      *errgroup.Group
	logger logging.Logger
}

// New creates a pool running at most size jobs at once. Job errors are
// logged and never stop the pool.
func New(ctx context.Context, size int, logger logging.Logger) *Pool {
	ctx, cancel := context.WithCancel(ctx)
	g := &errgroup.Group{}
	g.SetLimit(size)
	return &Pool{ctx: ctx, cancel: cancel, g: g, logger: logger}
}

// Submit queues job. It blocks while the pool is saturated.
func (p *Pool) Submit(name string, job Job) {
	p.g.Go(func() error {
		if p.ctx.Err() != nil {
			return nil
		}
		if err := job(p.ctx); err != nil {
			p.logger.Error(p.ctx, "background job failed", "job", name, "error", err)
		}
		return nil
	})
}

// Close cancels pending jobs and waits for running ones to return.
func (p *Pool) Close() {
	p.cancel()
	_ = p.g.Wait()
}

// Wait blocks until every submitted job has finished.
func (p *Pool) Wait() {
	_ = p.g.Wait()
}
