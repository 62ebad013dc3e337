package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/orderwatch/internal/session"

	redis "github.com/redis/go-redis/v9"
)

// sessionKey names the key holding the JSON encoded session record.
const sessionKey = "session"

// SaveSession implements the session.Storage interface, replacing the stored
// record with the given one.
func (c *client) SaveSession(ctx context.Context, record session.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, c.key(sessionKey), data, 0).Err()
}

// LoadSession implements the session.Storage interface.
//
// Returns session.ErrNoSession when nothing is stored.
func (c *client) LoadSession(ctx context.Context) (session.Record, error) {
	data, err := c.conn.Get(ctx, c.key(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Record{}, session.ErrNoSession
	}
	if err != nil {
		return session.Record{}, err
	}

	var record session.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return session.Record{}, fmt.Errorf("decode session record: %w", err)
	}

	return record, nil
}

// DeleteSession implements the session.Storage interface.
func (c *client) DeleteSession(ctx context.Context) error {
	return c.conn.Del(ctx, c.key(sessionKey)).Err()
}

// Compile-time assertion to ensure *client satisfies the session.Storage interface
var _ session.Storage = new(client)
