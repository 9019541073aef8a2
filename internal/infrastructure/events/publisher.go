// Package events delivers system message events emitted by the lifecycle
// engine. Emission is unconditional at the usecase layer; these publishers
// decide where the announcement goes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
)

// RedisPublisher fans events out over a redis pub/sub channel per
// conversation pair, so connected frontends can surface them live.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// channelFor names the pub/sub channel of an unordered user pair.
func channelFor(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("conversation:%d:%d", a, b)
}

func (p *RedisPublisher) Publish(ctx context.Context, event *domain.SystemMessageEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	channel := channelFor(event.SenderID, event.ReceiverID)
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", channel, err)
	}
	return nil
}

// Recorder collects events in memory. Used when no redis is configured and
// by tests asserting on emissions.
type Recorder struct {
	mu     sync.Mutex
	events []*domain.SystemMessageEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(ctx context.Context, event *domain.SystemMessageEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := *event
	r.events = append(r.events, &e)
	return nil
}

// Events returns a snapshot of everything published so far.
func (r *Recorder) Events() []*domain.SystemMessageEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.SystemMessageEvent, len(r.events))
	copy(out, r.events)
	return out
}
