package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/resumatch/resumatch/pkg/fsx"
	"github.com/resumatch/resumatch/pkg/logx"
	"github.com/resumatch/resumatch/screening/resume"
	"github.com/resumatch/resumatch/screening/resume/resumesrv"
)

// ReportWorker drains the report queue and writes extraction reports to
// storage. Failed jobs are logged and dropped; reports are best effort.
type ReportWorker struct {
	queue   resume.ReportQueue
	store   fsx.FileSystem
	workers int
}

func NewReportWorker(queue resume.ReportQueue, store fsx.FileSystem, workers int) *ReportWorker {
	return &ReportWorker{
		queue:   queue,
		store:   store,
		workers: workers,
	}
}

func (w *ReportWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d report workers", w.workers)

	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *ReportWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Report worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Report worker %d stopping", workerID)
			return
		default:
			// Dequeue with 5 second timeout
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				// A canceled context surfaces as a dequeue error; let the
				// select above handle shutdown instead of logging it.
				if ctx.Err() == nil {
					logx.Errorf("Report worker %d dequeue error: %v", workerID, err)
				}
				continue
			}
			if len(data) == 0 {
				continue
			}

			var job resume.ReportJob
			if err := json.Unmarshal(data, &job); err != nil {
				logx.Errorf("Report worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			path := resumesrv.ReportPath(job)
			if err := w.store.WriteFile(ctx, path, resumesrv.RenderReport(job)); err != nil {
				logx.Errorf("Report worker %d failed to write %s: %v", workerID, path, err)
				continue
			}
			logx.Debugf("Report worker %d wrote %s", workerID, path)
		}
	}
}
