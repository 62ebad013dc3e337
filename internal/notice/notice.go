// Package notice keeps the short-lived, user-visible messages produced by
// background work such as a failed refresh.
package notice

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 20 * time.Second

// Notice is a single message.
type Notice struct {
	ID        string
	Message   string
	CreatedAt time.Time
}

// Queue is an append-only list of notices that expire on their own.
type Queue interface {
	// Push appends a message.
	Push(msg string)

	// List returns the live notices, oldest first.
	List() []Notice
}

type config struct {
	ttl time.Duration
}

// Option configures a Queue.
type Option func(*config)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

type queue struct {
	items *cache.Cache
}

var _ Queue = (*queue)(nil)

func (q *queue) Push(msg string) {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	q.items.SetDefault(id.String(), Notice{
		ID:        id.String(),
		Message:   msg,
		CreatedAt: time.Now(),
	})
}

func (q *queue) List() []Notice {
	items := q.items.Items()

	notices := make([]Notice, 0, len(items))
	for _, item := range items {
		notices = append(notices, item.Object.(Notice))
	}

	// v7 ids sort by creation time
	slices.SortFunc(notices, func(a, b Notice) int {
		return strings.Compare(a.ID, b.ID)
	})

	return notices
}

// New returns an in-memory Queue.
func New(opts ...Option) *queue {
	cfg := config{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &queue{
		items: cache.New(cfg.ttl, cfg.ttl),
	}
}
