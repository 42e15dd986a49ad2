package ledger

import (
	"context"
	"fmt"

	"ledgerwriter/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisAppender appends transactions to a Redis stream with XADD. The stream
// assigns each entry a monotonically increasing ID, which serves as the
// sequence position; Redis serializes concurrent appends into a single total
// order, so no locking happens here.
type RedisAppender struct {
	client *redis.Client
	stream string
}

// NewRedisAppender creates an appender that writes to the named stream.
func NewRedisAppender(client *redis.Client, stream string) *RedisAppender {
	return &RedisAppender{client: client, stream: stream}
}

// Append writes the transaction to the stream and returns the assigned
// stream ID. A single attempt is made; failures wrap ErrAppend.
func (a *RedisAppender) Append(ctx context.Context, tx *models.Transaction) (string, error) {
	id, err := a.client.XAdd(ctx, &redis.XAddArgs{
		Stream: a.stream,
		Values: EntryValues(tx),
	}).Result()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAppend, err)
	}
	return id, nil
}
