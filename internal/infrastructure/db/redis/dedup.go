package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Posted markers outlive any scheduler lag but expire eventually so the
// keyspace does not grow without bound.
const postedMarkerTTL = 45 * 24 * time.Hour

// PostingDedup records which recurring expenses have already been posted
// for a given due date.
type PostingDedup struct {
	client *redis.Client
}

func NewPostingDedup(client *redis.Client) *PostingDedup {
	return &PostingDedup{client: client}
}

func (d *PostingDedup) IsPosted(ctx context.Context, expenseID int, due time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, postingKey(expenseID, due)).Result()
	if err != nil {
		return false, fmt.Errorf("check posting marker: %w", err)
	}
	return n > 0, nil
}

func (d *PostingDedup) MarkPosted(ctx context.Context, expenseID int, due time.Time) error {
	if err := d.client.Set(ctx, postingKey(expenseID, due), 1, postedMarkerTTL).Err(); err != nil {
		return fmt.Errorf("set posting marker: %w", err)
	}
	return nil
}

func postingKey(expenseID int, due time.Time) string {
	return fmt.Sprintf("posting:%d:%s", expenseID, due.Format("2006-01-02"))
}
