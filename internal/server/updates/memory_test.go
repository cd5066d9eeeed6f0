package updates

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan *billingpb.PurchaseUpdate) *billingpb.PurchaseUpdate {
	t.Helper()
	select {
	case u, ok := <-ch:
		require.True(t, ok, "channel closed")
		return u
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
		return nil
	}
}

func TestMemoryBroker_DeliversToAccountOnly(t *testing.T) {
	b := NewMemoryBroker(logging.Nop{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := b.Subscribe(ctx, "acc-a")
	require.NoError(t, err)
	other, err := b.Subscribe(ctx, "acc-b")
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, "acc-a", &billingpb.PurchaseUpdate{ResponseCode: billingpb.CodeOK}))

	assert.Equal(t, billingpb.CodeOK, recv(t, a).ResponseCode)
	select {
	case u := <-other:
		t.Fatalf("unexpected update %v", u)
	default:
	}
}

func TestMemoryBroker_FanOut(t *testing.T) {
	b := NewMemoryBroker(logging.Nop{})
	ctx := context.Background()

	s1, _ := b.Subscribe(ctx, "acc")
	s2, _ := b.Subscribe(ctx, "acc")

	require.NoError(t, b.Publish(ctx, "acc", &billingpb.PurchaseUpdate{ResponseCode: billingpb.CodeUserCanceled}))
	assert.Equal(t, billingpb.CodeUserCanceled, recv(t, s1).ResponseCode)
	assert.Equal(t, billingpb.CodeUserCanceled, recv(t, s2).ResponseCode)
	require.NoError(t, b.Close())
}

func TestMemoryBroker_CancelClosesChannel(t *testing.T) {
	b := NewMemoryBroker(logging.Nop{})
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := b.Subscribe(ctx, "acc")
	require.NoError(t, err)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// Publishing to an account without subscribers is a no-op.
	require.NoError(t, b.Publish(context.Background(), "acc", &billingpb.PurchaseUpdate{}))
}

func TestMemoryBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewMemoryBroker(logging.Nop{})
	ctx := context.Background()

	ch, _ := b.Subscribe(ctx, "acc")
	for i := 0; i < subscriberBuffer+3; i++ {
		require.NoError(t, b.Publish(ctx, "acc", &billingpb.PurchaseUpdate{ResponseCode: billingpb.CodeOK}))
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestMemoryBroker_CloseThenCancel(t *testing.T) {
	b := NewMemoryBroker(logging.Nop{})
	ctx, cancel := context.WithCancel(context.Background())

	ch, _ := b.Subscribe(ctx, "acc")
	require.NoError(t, b.Close())
	_, ok := <-ch
	assert.False(t, ok)

	// remove after Close must not close the channel twice.
	cancel()
	time.Sleep(10 * time.Millisecond)
}
