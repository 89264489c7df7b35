package resume

import (
	"context"
	"time"
)

// ReportQueue buffers extraction report jobs between the request path and
// the background writer. Enqueue must not block on slow storage; report
// writing is best effort.
type ReportQueue interface {
	// Enqueue pushes a job payload onto the queue.
	Enqueue(ctx context.Context, job ReportJob) error

	// Dequeue pops the next job payload, blocking up to timeout. Returns
	// (nil, nil) when the timeout elapses with nothing to do.
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// Size returns the number of pending jobs.
	Size(ctx context.Context) (int64, error)

	// Clear drops all pending jobs.
	Clear(ctx context.Context) error

	// Ping checks connectivity to the backing store.
	Ping(ctx context.Context) error
}
