package broker

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisMessage is one stream entry delivered to a consumer of the group.
type RedisMessage struct {
	stream string
	group  string
	id     string
	body   string
	redis  *redis.Client
}

func (m *RedisMessage) ID() string {
	return m.id
}

func (m *RedisMessage) Body() string {
	return m.body
}

func (m *RedisMessage) Ack() error {
	return m.redis.XAck(context.Background(), m.stream, m.group, m.id).Err()
}

// Nack appends the body to the stream as a new entry and acks the original
// in one MULTI, so the event is handed to the next reader of the group
// instead of sitting in this consumer's pending list.
func (m *RedisMessage) Nack() error {
	ctx := context.Background()

	_, err := m.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: m.stream,
			Values: map[string]any{"body": m.body},
		})
		pipe.XAck(ctx, m.stream, m.group, m.id)

		return nil
	})

	return err
}
