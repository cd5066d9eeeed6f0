package updates

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

var _ Broker = (*MemoryBroker)(nil)

type MemoryBroker struct {
	mu     sync.Mutex
	subs   map[string]map[chan *billingpb.PurchaseUpdate]struct{}
	logger logging.Logger
}

func NewMemoryBroker(logger logging.Logger) *MemoryBroker {
	return &MemoryBroker{
		subs:   make(map[string]map[chan *billingpb.PurchaseUpdate]struct{}),
		logger: logger.With("module", "memory_broker"),
	}
}

// Publish never blocks: a subscriber whose buffer is full misses the update.
func (b *MemoryBroker) Publish(ctx context.Context, accountID string, u *billingpb.PurchaseUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs[accountID] {
		select {
		case ch <- u:
		default:
			b.logger.Warn(ctx, "subscriber too slow, update dropped", "account", accountID)
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, accountID string) (<-chan *billingpb.PurchaseUpdate, error) {
	ch := make(chan *billingpb.PurchaseUpdate, subscriberBuffer)

	b.mu.Lock()
	set, ok := b.subs[accountID]
	if !ok {
		set = make(map[chan *billingpb.PurchaseUpdate]struct{})
		b.subs[accountID] = set
	}
	set[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(accountID, ch)
	}()

	return ch, nil
}

func (b *MemoryBroker) remove(accountID string, ch chan *billingpb.PurchaseUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[accountID]
	if !ok {
		return
	}
	if _, ok := set[ch]; !ok {
		return
	}
	delete(set, ch)
	if len(set) == 0 {
		delete(b.subs, accountID)
	}
	close(ch)
}

// Close ends every subscription.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for account, set := range b.subs {
		for ch := range set {
			close(ch)
		}
		delete(b.subs, account)
	}
	return nil
}
