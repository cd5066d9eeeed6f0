package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestPool_RunsAllJobs(t *testing.T) {
	p := New(context.Background(), 2, logging.Nop{})
	var n atomic.Int32
	for i := 0; i < 10; i++ {
		p.Submit("inc", func(ctx context.Context) error {
			n.Add(1)
			return nil
		})
	}
	p.Wait()
	assert.Equal(t, int32(10), n.Load())
}

func TestPool_RespectsLimit(t *testing.T) {
	p := New(context.Background(), 2, logging.Nop{})
	var running, peak atomic.Int32
	for i := 0; i < 6; i++ {
		p.Submit("busy", func(ctx context.Context) error {
			cur := running.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return nil
		})
	}
	p.Wait()
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestPool_ErrorsDoNotStopPool(t *testing.T) {
	p := New(context.Background(), 1, logging.Nop{})
	var ok atomic.Bool
	p.Submit("fail", func(ctx context.Context) error { return errors.New("boom") })
	p.Submit("after", func(ctx context.Context) error {
		ok.Store(true)
		return nil
	})
	p.Wait()
	assert.True(t, ok.Load())
}

func TestPool_CloseCancelsContext(t *testing.T) {
	p := New(context.Background(), 1, logging.Nop{})
	done := make(chan error, 1)
	p.Submit("wait", func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return nil
	})
	p.Close()
	assert.ErrorIs(t, <-done, context.Canceled)
}
