package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const channelPrefix = "events:"

type envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(url string) (*RedisNotifier, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("events: parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("events: redis ping: %w", err)
	}

	return &RedisNotifier{client: client}, nil
}

func (n *RedisNotifier) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("events: marshal payload: %w", err)
	}

	msg, err := json.Marshal(envelope{Kind: ev.Kind, Payload: payload})
	if err != nil {
		return fmt.Errorf("events: marshal envelope: %w", err)
	}

	return n.client.Publish(ctx, channelPrefix+ev.Table, msg).Err()
}

// OnChange assina o canal da tabela e repassa os eventos do tipo pedido.
// A goroutine vive até o client ser fechado.
func (n *RedisNotifier) OnChange(table, kind string, handler func(payload []byte)) error {
	pubsub := n.client.Subscribe(context.Background(), channelPrefix+table)

	go func() {
		for msg := range pubsub.Channel() {
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Warn().Err(err).Str("table", table).Msg("events: bad message")
				continue
			}
			if kind != "" && env.Kind != kind {
				continue
			}
			handler(env.Payload)
		}
	}()

	return nil
}

func (n *RedisNotifier) Close() error {
	return n.client.Close()
}

var _ Notifier = (*RedisNotifier)(nil)
