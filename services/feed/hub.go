package feed

import (
	"context"
	"strings"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Topic helpers. A topic names one live query view.
func UserBookingsTopic(userID string) string   { return "bookings:user:" + userID }
func OwnerBookingsTopic(ownerID string) string { return "bookings:owner:" + ownerID }
func NotificationsTopic(userID string) string  { return "notifications:" + userID }

const redisChannel = "feed:changed"

// Hub is an in-process change feed. Mutating services publish the topics they
// touched; subscribers get a signal per publish and re-run their query. When a
// Redis client is attached, publishes also fan out to other instances over
// pub/sub so every process refreshes its local subscribers.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]func()

	instanceID string
	rdb        *redis.Client
	logger     *zap.Logger
}

// NewHub creates a Hub. rdb may be nil for single-instance or test use.
func NewHub(rdb *redis.Client, logger *zap.Logger) *Hub {
	return &Hub{
		subs:       make(map[string]map[int]func()),
		instanceID: uuid.New().String(),
		rdb:        rdb,
		logger:     logger,
	}
}

// Subscribe registers a signal callback for a topic and returns an
// unsubscribe func. The callback must be cheap; subscribers re-run their
// query on their own goroutine.
func (h *Hub) Subscribe(topic string, signal func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]func())
	}
	h.subs[topic][id] = signal

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[topic], id)
		if len(h.subs[topic]) == 0 {
			delete(h.subs, topic)
		}
	}
}

// Publish signals every local subscriber of the given topics and forwards the
// topics to other instances via Redis when configured.
func (h *Hub) Publish(topics ...string) {
	for _, topic := range topics {
		h.fanout(topic)
	}
	if h.rdb == nil {
		return
	}
	ctx := context.Background()
	for _, topic := range topics {
		if err := h.rdb.Publish(ctx, redisChannel, h.instanceID+"|"+topic).Err(); err != nil {
			h.logger.Warn("feed: redis publish failed", zap.String("topic", topic), zap.Error(err))
		}
	}
}

func (h *Hub) fanout(topic string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, signal := range h.subs[topic] {
		go signal()
	}
}

// Run consumes cross-instance publishes until ctx is cancelled. Messages from
// this instance are skipped; their local fanout already happened.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb == nil {
		return
	}
	sub := h.rdb.Subscribe(ctx, redisChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			origin, topic, found := strings.Cut(msg.Payload, "|")
			if !found || origin == h.instanceID {
				continue
			}
			h.fanout(topic)
		}
	}
}
