// Package updates fans purchase updates out to the streams subscribed for an
// account. MemoryBroker serves a single server process; RedisBroker shares
// updates between replicas over Redis pub/sub.
package updates

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/billingpb"
)

// subscriberBuffer bounds the updates queued for a slow subscriber.
const subscriberBuffer = 8

type Broker interface {
	Publish(ctx context.Context, accountID string, u *billingpb.PurchaseUpdate) error

	// Subscribe returns a channel of the account's updates. The channel is
	// closed once ctx is done.
	Subscribe(ctx context.Context, accountID string) (<-chan *billingpb.PurchaseUpdate, error)

	Close() error
}
