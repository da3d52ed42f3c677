package workers

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
)

// JobWorker runs the background maintenance passes over postings.
type JobWorker struct {
	jobRepo  repositories.JobRepository
	interval time.Duration
}

func NewJobWorker(jobRepo repositories.JobRepository) *JobWorker {
	return &JobWorker{
		jobRepo:  jobRepo,
		interval: time.Hour,
	}
}

// Start launches the worker goroutines; they exit when ctx is cancelled.
func (w *JobWorker) Start(ctx context.Context) {
	go w.autoCloseExpired(ctx)
}

// autoCloseExpired closes active postings whose expiry date has passed.
func (w *JobWorker) autoCloseExpired(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job worker stopped")
			return
		case <-ticker.C:
			closed, err := w.jobRepo.CloseExpired(time.Now())
			if err != nil {
				logger.WorkerLog("job_worker", "auto_close_expired", err)
				continue
			}
			if closed > 0 {
				logger.Info("auto-closed expired jobs", "count", closed)
			}
		}
	}
}
