package scanner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/observable"
	"golang.org/x/sync/errgroup"
)

var ErrAlreadyRunning = errors.New("coordinator already running")

// Coordinator implements Analyzer over a one-slot mailbox.
type Coordinator struct {
	decoder  Decoder
	consumer func(models.ScannedCode)
	logger   logging.Logger
	torch    *observable.Value[bool]

	mu      sync.Mutex
	mailbox chan Frame
	running atomic.Bool
}

// NewCoordinator returns a coordinator passing each detected code to consumer.
// consumer runs on the analysis goroutine.
func NewCoordinator(decoder Decoder, consumer func(models.ScannedCode), logger logging.Logger) *Coordinator {
	return &Coordinator{
		decoder:  decoder,
		consumer: consumer,
		logger:   logger.With("component", "scanner"),
		torch:    observable.New(false),
		mailbox:  make(chan Frame, 1),
	}
}

// Analyze queues f, replacing a frame that has not been picked up yet.
func (c *Coordinator) Analyze(f Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case old := <-c.mailbox:
		_ = old.Close()
	default:
	}
	c.mailbox <- f
}

func (c *Coordinator) SetTorch(on bool) { c.torch.Set(on) }
func (c *Coordinator) Torch() bool      { return c.torch.Get() }

// ToggleTorch flips the torch and returns the new state.
func (c *Coordinator) ToggleTorch() bool {
	return c.torch.Update(func(on bool) bool { return !on })
}

// Run binds cam and analyzes its frames until the camera is exhausted or ctx
// is done.
func (c *Coordinator) Run(ctx context.Context, cam Camera) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer c.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.analyzeLoop(gctx)
		return nil
	})
	g.Go(func() error {
		c.applyTorch(gctx, cam)
		return nil
	})

	err := cam.Bind(ctx, c)
	cancel()
	_ = g.Wait()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *Coordinator) analyzeLoop(ctx context.Context) {
	for {
		select {
		case f := <-c.mailbox:
			c.process(f)
		case <-ctx.Done():
			c.drain()
			return
		}
	}
}

func (c *Coordinator) process(f Frame) {
	defer func() { _ = f.Close() }()

	codes, err := c.decoder.Decode(f)
	if err != nil {
		c.logger.Debug(context.Background(), "frame analysis failed", "error", err)
		return
	}
	if len(codes) == 0 {
		return
	}

	first := codes[0]
	c.consumer(models.ScannedCode{Content: first.Text, Type: Classify(first.Kind)})
}

func (c *Coordinator) drain() {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case f := <-c.mailbox:
		_ = f.Close()
	default:
	}
}

func (c *Coordinator) applyTorch(ctx context.Context, cam Camera) {
	for on := range c.torch.Subscribe(ctx) {
		if err := cam.SetTorch(on); err != nil {
			c.logger.Warn(ctx, "failed to set torch", "on", on, "error", err)
		}
	}
}
