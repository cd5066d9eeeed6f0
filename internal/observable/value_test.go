package observable

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_GetSet(t *testing.T) {
	v := New(1)
	assert.Equal(t, 1, v.Get())

	v.Set(2)
	assert.Equal(t, 2, v.Get())

	got := v.Update(func(x int) int { return x * 10 })
	assert.Equal(t, 20, got)
	assert.Equal(t, 20, v.Get())
}

func TestValue_SubscribeReceivesCurrentFirst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := New("a")
	ch := v.Subscribe(ctx)

	require.Equal(t, "a", <-ch)

	v.Set("b")
	require.Equal(t, "b", <-ch)
}

func TestValue_SlowSubscriberSeesLatestOnly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := New(0)
	ch := v.Subscribe(ctx)

	for i := 1; i <= 100; i++ {
		v.Set(i)
	}

	select {
	case got := <-ch:
		assert.Equal(t, 100, got)
	case <-time.After(time.Second):
		t.Fatal("no value delivered")
	}
}

func TestValue_SubscribeClosedOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	v := New(0)
	ch := v.Subscribe(ctx)
	<-ch

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// writer keeps working after the subscriber left
	v.Set(5)
	assert.Equal(t, 5, v.Get())
}

func TestValue_ConcurrentReaders(t *testing.T) {
	v := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = v.Get()
			}
		}()
	}
	for j := 0; j < 100; j++ {
		v.Set(j)
	}
	wg.Wait()
	assert.Equal(t, 99, v.Get())
}
