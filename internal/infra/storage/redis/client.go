// Package redis persists the seller session in Redis. Keys live under a
// namespace so several orderwatch installations can share a server.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key written by the client.
const DefaultNamespace = "orderwatch"

type client struct {
	conn      *redis.Client
	namespace string
}

func (c *client) key(name string) string {
	return c.namespace + ":" + name
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	username  string
	password  string
	db        int
	namespace string
}

type Option func(*config)

// NewClient connects to the Redis server at addr and checks it answers PING.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{
		namespace: DefaultNamespace,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return &client{
		conn:      conn,
		namespace: cfg.namespace,
	}, nil
}

// WithCredentials authenticates with ACL username and password. An empty
// username uses the default user.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithNamespace replaces DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}
