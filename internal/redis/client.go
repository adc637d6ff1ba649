package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func mailboxKey(tableID uint) string {
	return fmt.Sprintf("mailbox:table:%d", tableID)
}

func presenceKey(role string, userID uint) string {
	return fmt.Sprintf("presence:%s:%d", role, userID)
}

// Table mailbox: one pending message per table, overwritten by newer ones.
func (c *Client) PutTableMessage(tableID uint, message string, ttl time.Duration) error {
	ctx := context.Background()
	if err := c.rdb.Set(ctx, mailboxKey(tableID), message, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store table message: %w", err)
	}
	return nil
}

// TakeTableMessage reads and clears the table mailbox in one GETDEL, so a
// message is handed out at most once.
func (c *Client) TakeTableMessage(tableID uint) (string, bool, error) {
	ctx := context.Background()
	val, err := c.rdb.GetDel(ctx, mailboxKey(tableID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to take table message: %w", err)
	}
	return val, true, nil
}

// Staff presence
func (c *Client) SetPresence(role string, userID uint, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, presenceKey(role, userID), time.Now().Unix(), ttl).Err()
}

func (c *Client) ClearPresence(role string, userID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, presenceKey(role, userID)).Err()
}

// OnlineUsers returns the ids of staff of the given role with a live presence key.
func (c *Client) OnlineUsers(role string) ([]uint, error) {
	ctx := context.Background()
	prefix := "presence:" + role + ":"

	var ids []uint
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		id, err := strconv.ParseUint(strings.TrimPrefix(iter.Val(), prefix), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan presence keys: %w", err)
	}
	return ids, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
