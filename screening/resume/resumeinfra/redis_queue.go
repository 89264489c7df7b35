package resumeinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resumatch/resumatch/screening/resume"
)

// RedisReportQueue implements the ReportQueue interface on a Redis list.
type RedisReportQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisReportQueue creates a Redis-backed report queue.
func NewRedisReportQueue(client *redis.Client, queueName string) resume.ReportQueue {
	return &RedisReportQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds a report job to the queue.
func (q *RedisReportQueue) Enqueue(ctx context.Context, job resume.ReportJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal report job %s: %w", job.ID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue report job %s: %w", job.ID, err)
	}

	return nil
}

// Dequeue gets a report job payload from the queue (blocking with timeout).
func (q *RedisReportQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when timeout occurs
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue report job: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return []byte(result[1]), nil
}

// Size returns the number of pending report jobs.
func (q *RedisReportQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// Clear drops all pending report jobs.
func (q *RedisReportQueue) Clear(ctx context.Context) error {
	if err := q.client.Del(ctx, q.queueName).Err(); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (q *RedisReportQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
