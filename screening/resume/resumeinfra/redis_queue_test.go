package resumeinfra

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/resumatch/screening/resume"
)

func newTestQueue(t *testing.T) resume.ReportQueue {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisReportQueue(client, "reports:test")
}

func TestEnqueueDequeue(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	job := resume.ReportJob{
		ID:        "job-1",
		FileName:  "resume.pdf",
		RawText:   "raw text",
		Resume:    resume.Resume{Name: "Jane Doe"},
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, queue.Enqueue(ctx, job))

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	data, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, data)

	var got resume.ReportJob
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.Resume.Name)
	assert.True(t, job.CreatedAt.Equal(got.CreatedAt))
}

func TestDequeueOrder(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, resume.ReportJob{ID: "first"}))
	require.NoError(t, queue.Enqueue(ctx, resume.ReportJob{ID: "second"}))

	data, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	var got resume.ReportJob
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "first", got.ID.String())
}

func TestDequeueTimeoutEmptyQueue(t *testing.T) {
	queue := newTestQueue(t)

	data, err := queue.Dequeue(context.Background(), 100*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestClear(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, resume.ReportJob{ID: "job"}))
	require.NoError(t, queue.Clear(ctx))

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestPing(t *testing.T) {
	queue := newTestQueue(t)
	assert.NoError(t, queue.Ping(context.Background()))
}
