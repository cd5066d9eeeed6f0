package updates

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/redis/go-redis/v9"
	"google.golang.org/protobuf/encoding/protojson"
)

var _ Broker = (*RedisBroker)(nil)

const channelPrefix = "qrscanner:updates:"

func channelName(accountID string) string {
	return channelPrefix + accountID
}

type RedisBroker struct {
	client *redis.Client
	logger logging.Logger
}

// NewRedisClient parses redisURL and pings the server before returning.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}
	return client, nil
}

func NewRedisBroker(client *redis.Client, logger logging.Logger) *RedisBroker {
	return &RedisBroker{client: client, logger: logger.With("module", "redis_broker")}
}

func (b *RedisBroker) Publish(ctx context.Context, accountID string, u *billingpb.PurchaseUpdate) error {
	payload, err := protojson.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	if err := b.client.Publish(ctx, channelName(accountID), payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe waits for Redis to confirm the subscription so that no update
// published after it returns is missed.
func (b *RedisBroker) Subscribe(ctx context.Context, accountID string) (<-chan *billingpb.PurchaseUpdate, error) {
	ps := b.client.Subscribe(ctx, channelName(accountID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan *billingpb.PurchaseUpdate, subscriberBuffer)
	go func() {
		defer close(out)
		defer ps.Close()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				u := &billingpb.PurchaseUpdate{}
				if err := protojson.Unmarshal([]byte(msg.Payload), u); err != nil {
					b.logger.Warn(ctx, "malformed purchase update", "channel", msg.Channel, "error", err)
					continue
				}
				select {
				case out <- u:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (b *RedisBroker) Close() error {
	return b.client.Close()
}
